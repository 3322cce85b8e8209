package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"

	"github.com/shopspring/decimal"
)

func tx(t int, amount string) models.Transaction {
	return models.Transaction{
		TransactionType:   t,
		TransactionAmount: decimal.RequireFromString(amount),
	}
}

func TestSummarize(t *testing.T) {
	rows := []models.Transaction{
		tx(models.TypeDeposit, "100.25"),
		tx(models.TypeDeposit, "50"),
		tx(models.TypeWithdraw, "30.25"),
	}

	totals := Summarize(rows)
	if got := totals.Deposits.StringFixed(2); got != "150.25" {
		t.Errorf("Deposits = %s, want 150.25", got)
	}
	if got := totals.Withdrawals.StringFixed(2); got != "30.25" {
		t.Errorf("Withdrawals = %s, want 30.25", got)
	}
	if got := totals.Net().StringFixed(2); got != "120.00" {
		t.Errorf("Net = %s, want 120.00", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	totals := Summarize(nil)
	if !totals.Net().IsZero() {
		t.Errorf("Net of no rows = %s, want 0", totals.Net())
	}
}

func TestTransactionsPDF(t *testing.T) {
	rows := []models.Transaction{
		tx(models.TypeDeposit, "100"),
		tx(models.TypeWithdraw, "40"),
	}
	rows[0].ClientName = "Smith"
	rows[0].CreateDate = "2026-01-05"

	out, err := TransactionsPDF(rows, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("TransactionsPDF error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
}
