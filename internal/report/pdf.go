// Package report renders transaction exports. Handlers treat it as an
// opaque collaborator: rows in, document bytes out.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Totals summarizes the rows included in a report.
type Totals struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}

// Net is deposits minus withdrawals.
func (t Totals) Net() decimal.Decimal {
	return t.Deposits.Sub(t.Withdrawals)
}

// Summarize computes report totals over the given rows.
func Summarize(rows []models.Transaction) Totals {
	var t Totals
	for i := range rows {
		if rows[i].IsWithdraw() {
			t.Withdrawals = t.Withdrawals.Add(rows[i].TransactionAmount)
		} else {
			t.Deposits = t.Deposits.Add(rows[i].TransactionAmount)
		}
	}
	return t
}

func typeLabel(t int) string {
	if t == models.TypeWithdraw {
		return "Withdraw"
	}
	return "Deposit"
}

// TransactionsPDF renders the transaction report as a plain table with a
// totals footer.
func TransactionsPDF(rows []models.Transaction, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Transaction Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	headers := []string{"ID", "Client", "Type", "Amount", "Charges %", "Date", "Remark"}
	widths := []float64{12, 42, 20, 26, 20, 24, 46}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := range rows {
		r := &rows[i]
		charges := ""
		if r.WidthdrawCharges != nil {
			charges = r.WidthdrawCharges.StringFixed(2)
		}
		cells := []string{
			fmt.Sprintf("%d", r.ID),
			r.ClientName,
			typeLabel(r.TransactionType),
			r.TransactionAmount.StringFixed(2),
			charges,
			r.CreateDate,
			r.Remark,
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := Summarize(rows)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Total deposits: "+t.Deposits.StringFixed(2))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Total withdrawals: "+t.Withdrawals.StringFixed(2))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Net: "+t.Net().StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
