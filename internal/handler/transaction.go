package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewTransactionHandler(db *gorm.DB, app config.AppSubConfig) *TransactionHandler {
	return &TransactionHandler{DB: db, App: app}
}

var txSortCols = map[string]string{
	"client_name":        "client_name",
	"transaction_amount": "transaction_amount",
	"create_date":        "create_date",
}

// txFilters is the transaction list filter set. It parses both from query
// parameters (list, export) and from a JSON body (report).
type txFilters struct {
	MinAmount *decimal.Decimal `json:"min_amount"`
	MaxAmount *decimal.Decimal `json:"max_amount"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	ClientIDs []uint           `json:"client_ids"`
	BankIDs   []uint           `json:"bank_ids"`
	Type      *int             `json:"transaction_type"`
}

func parseUintList(s string) []uint {
	if s == "" {
		return nil
	}
	var out []uint
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			continue
		}
		out = append(out, uint(n))
	}
	return out
}

func parseTxFilters(c *gin.Context) txFilters {
	var f txFilters
	if s := c.Query("min_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			f.MinAmount = &d
		}
	}
	if s := c.Query("max_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			f.MaxAmount = &d
		}
	}
	f.StartDate = c.Query("start_date")
	f.EndDate = c.Query("end_date")
	f.ClientIDs = parseUintList(c.Query("client_ids"))
	f.BankIDs = parseUintList(c.Query("bank_ids"))
	if s := c.Query("transaction_type"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Type = &n
		}
	}
	return f
}

func (f txFilters) validate() error {
	if err := util.ValidateDateRange(f.StartDate, f.EndDate); err != nil {
		return err
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MaxAmount.LessThan(*f.MinAmount) {
		return errAmountRange
	}
	if f.Type != nil && *f.Type != models.TypeDeposit && *f.Type != models.TypeWithdraw {
		return errBadType
	}
	return nil
}

func (f txFilters) apply(base *gorm.DB) *gorm.DB {
	if f.MinAmount != nil {
		base = base.Where("transaction_amount >= ?", f.MinAmount)
	}
	if f.MaxAmount != nil {
		base = base.Where("transaction_amount <= ?", f.MaxAmount)
	}
	// create_date is YYYY-MM-DD, so string comparison orders correctly
	if f.StartDate != "" {
		base = base.Where("create_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		base = base.Where("create_date <= ?", f.EndDate)
	}
	if len(f.ClientIDs) > 0 {
		base = base.Where("client_id IN ?", f.ClientIDs)
	}
	if len(f.BankIDs) > 0 {
		base = base.Where("bank_id IN ?", f.BankIDs)
	}
	if f.Type != nil {
		base = base.Where("transaction_type = ?", *f.Type)
	}
	return base
}

// applied echoes back only the filters that were actually set.
func (f txFilters) applied() gin.H {
	out := gin.H{}
	if f.MinAmount != nil {
		out["min_amount"] = f.MinAmount
	}
	if f.MaxAmount != nil {
		out["max_amount"] = f.MaxAmount
	}
	if f.StartDate != "" {
		out["start_date"] = f.StartDate
	}
	if f.EndDate != "" {
		out["end_date"] = f.EndDate
	}
	if len(f.ClientIDs) > 0 {
		out["client_ids"] = f.ClientIDs
	}
	if len(f.BankIDs) > 0 {
		out["bank_ids"] = f.BankIDs
	}
	if f.Type != nil {
		out["transaction_type"] = *f.Type
	}
	return out
}

// ---------- requests ----------

type txReq struct {
	ClientID          uint             `json:"client_id" binding:"required"`
	TransactionType   *int             `json:"transaction_type" binding:"required"`
	TransactionAmount decimal.Decimal  `json:"transaction_amount"`
	BankID            *uint            `json:"bank_id"`
	CardID            *uint            `json:"card_id"`
	WidthdrawCharges  *decimal.Decimal `json:"widthdraw_charges"`
	Remark            string           `json:"remark" binding:"max=255"`
}

type txUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	txReq
}

// validateTxReq applies the deposit/withdraw business rules and resolves the
// referenced client. Withdrawals need a bank or card and may carry charges;
// deposits must carry neither.
func (h *TransactionHandler) validateTxReq(c *gin.Context, req *txReq) (*models.Client, bool) {
	if err := util.ValidateAmount(req.TransactionAmount); err != nil {
		util.Error(c, http.StatusBadRequest, "please enter a valid amount")
		return nil, false
	}

	switch *req.TransactionType {
	case models.TypeDeposit:
		if req.BankID != nil || req.CardID != nil || req.WidthdrawCharges != nil {
			util.Error(c, http.StatusBadRequest, "deposit cannot carry bank, card or charges")
			return nil, false
		}
	case models.TypeWithdraw:
		if req.BankID == nil && req.CardID == nil {
			util.Error(c, http.StatusBadRequest, "withdraw requires a bank or card")
			return nil, false
		}
		if req.WidthdrawCharges != nil {
			if err := util.ValidatePercent(*req.WidthdrawCharges); err != nil {
				util.Error(c, http.StatusBadRequest, "charges must be between 0 and 100")
				return nil, false
			}
		}
	default:
		util.Error(c, http.StatusBadRequest, "invalid transaction type")
		return nil, false
	}

	var client models.Client
	if err := h.DB.First(&client, req.ClientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, "client not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return nil, false
	}

	if req.BankID != nil {
		var n int64
		if err := h.DB.Model(&models.Bank{}).Where("id = ?", *req.BankID).Count(&n).Error; err != nil || n == 0 {
			util.Error(c, http.StatusBadRequest, "bank not found")
			return nil, false
		}
	}
	if req.CardID != nil {
		var n int64
		if err := h.DB.Model(&models.Card{}).Where("id = ?", *req.CardID).Count(&n).Error; err != nil || n == 0 {
			util.Error(c, http.StatusBadRequest, "card not found")
			return nil, false
		}
	}

	return &client, true
}

// ---------- endpoints ----------

func (h *TransactionHandler) List(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, txSortCols, "create_date", SortDesc)
	search := c.Query("search")

	filters := parseTxFilters(c)
	if err := filters.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	base := filters.apply(h.DB.Model(&models.Transaction{}))
	if search != "" {
		pat := likePattern(search)
		base = base.Where("client_name LIKE ? OR remark LIKE ?", pat, pat)
	}

	var txs []models.Transaction
	pg, ok := runList(c, base, pp, sort.orderClause(txSortCols), &txs)
	if !ok {
		return
	}

	util.Success(c, listPayload(txs, pg, filters.applied(), search, sort), "")
}

func (h *TransactionHandler) Autocomplete(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.Transaction{}, "client_name",
		[]string{"client_name", "remark"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req txReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	client, ok := h.validateTxReq(c, &req)
	if !ok {
		return
	}

	tx := models.Transaction{
		ClientID:          req.ClientID,
		ClientName:        client.ClientName,
		TransactionType:   *req.TransactionType,
		TransactionAmount: req.TransactionAmount,
		BankID:            req.BankID,
		CardID:            req.CardID,
		WidthdrawCharges:  req.WidthdrawCharges,
		Remark:            req.Remark,
	}
	tx.Stamp(time.Now())

	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save transaction")
		return
	}
	util.Success(c, tx, "transaction created")
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req txUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var tx models.Transaction
	if err := h.DB.First(&tx, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	client, ok := h.validateTxReq(c, &req.txReq)
	if !ok {
		return
	}

	tx.ClientID = req.ClientID
	tx.ClientName = client.ClientName
	tx.TransactionType = *req.TransactionType
	tx.TransactionAmount = req.TransactionAmount
	tx.BankID = req.BankID
	tx.CardID = req.CardID
	tx.WidthdrawCharges = req.WidthdrawCharges
	tx.Remark = req.Remark
	tx.Restamp(time.Now())

	if err := h.DB.Save(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save transaction")
		return
	}
	util.Success(c, tx, "transaction updated")
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.DB.Delete(&models.Transaction{}, req.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "transaction deleted")
}
