package handler

import (
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/report"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportHandler exports filtered transactions: PDF over the report endpoint,
// XLSX/CSV as streamed downloads.
type ReportHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewReportHandler(db *gorm.DB, app config.AppSubConfig) *ReportHandler {
	return &ReportHandler{DB: db, App: app}
}

type reportReq struct {
	txFilters
	Search string `json:"search"`
}

func (h *ReportHandler) fetchRows(filters txFilters, search string) ([]models.Transaction, error) {
	base := filters.apply(h.DB.Model(&models.Transaction{}))
	if search != "" {
		pat := likePattern(search)
		base = base.Where("client_name LIKE ? OR remark LIKE ?", pat, pat)
	}

	var rows []models.Transaction
	err := base.Order("create_date DESC, id DESC").Find(&rows).Error
	return rows, err
}

// Report renders the filtered transaction list to PDF and returns it
// base64-encoded with a generated filename.
func (h *ReportHandler) Report(c *gin.Context) {
	var req reportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.fetchRows(req.txFilters, req.Search)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}

	now := time.Now()
	pdfBytes, err := report.TransactionsPDF(rows, now)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to generate report")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.pdf",
		now.Format("20060102"), uuid.NewString()[:8])

	util.Success(c, util.Response{
		"pdfContent": base64.StdEncoding.EncodeToString(pdfBytes),
		"filename":   filename,
	}, "report generated")
}

// ExportXLSX streams the filtered transactions as a spreadsheet.
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	filters := parseTxFilters(c)
	if err := filters.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.fetchRows(filters, c.Query("search"))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}

	f := excelize.NewFile()
	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Client", "Type", "Amount", "Charges %", "Remark", "Date", "Time"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, hd)
	}

	for i := range rows {
		r := &rows[i]
		charges := ""
		if r.WidthdrawCharges != nil {
			charges = r.WidthdrawCharges.StringFixed(2)
		}
		values := []interface{}{
			r.ID, r.ClientName, typeText(r.TransactionType),
			r.TransactionAmount.StringFixed(2), charges,
			r.Remark, r.CreateDate, r.CreateTime,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to write spreadsheet")
	}
}

// ExportCSV streams the filtered transactions as CSV with a UTF-8 BOM so
// Excel opens it cleanly.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	filters := parseTxFilters(c)
	if err := filters.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.fetchRows(filters, c.Query("search"))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	_ = w.Write([]string{"ID", "Client", "Type", "Amount", "Charges %", "Remark", "Date", "Time"})
	for i := range rows {
		r := &rows[i]
		charges := ""
		if r.WidthdrawCharges != nil {
			charges = r.WidthdrawCharges.StringFixed(2)
		}
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.ClientName,
			typeText(r.TransactionType),
			r.TransactionAmount.StringFixed(2),
			charges,
			r.Remark,
			r.CreateDate,
			r.CreateTime,
		})
	}
}

func typeText(t int) string {
	if t == models.TypeWithdraw {
		return "withdraw"
	}
	return "deposit"
}
