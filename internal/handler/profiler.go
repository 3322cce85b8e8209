package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfilerHandler serves the profiler sub-module: balance profiles per
// client or bank, and their own deposit/withdraw transactions. A profile
// transaction always adjusts its profile's balance in the same database
// transaction.
type ProfilerHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewProfilerHandler(db *gorm.DB, app config.AppSubConfig) *ProfilerHandler {
	return &ProfilerHandler{DB: db, App: app}
}

var profileSortCols = map[string]string{
	"profile_name": "profile_name",
	"balance":      "balance",
	"create_date":  "create_date",
}

var profileTxSortCols = map[string]string{
	"transaction_amount": "transaction_amount",
	"create_date":        "create_date",
}

// ---------- profiles ----------

type profileReq struct {
	ProfileName string `json:"profile_name" binding:"required,max=128"`
	ClientID    *uint  `json:"client_id"`
	BankID      *uint  `json:"bank_id"`
}

type profileUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	profileReq
}

func (h *ProfilerHandler) ListProfiles(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, profileSortCols, "profile_name", SortAsc)
	search := c.Query("search")

	base := h.DB.Model(&models.Profile{})
	if search != "" {
		base = base.Where("profile_name LIKE ?", likePattern(search))
	}

	var profiles []models.Profile
	pg, ok := runList(c, base, pp, sort.orderClause(profileSortCols), &profiles)
	if !ok {
		return
	}

	util.Success(c, listPayload(profiles, pg, gin.H{}, search, sort), "")
}

func (h *ProfilerHandler) AutocompleteProfiles(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.Profile{}, "profile_name",
		[]string{"profile_name"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *ProfilerHandler) CreateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ClientID == nil && req.BankID == nil {
		util.Error(c, http.StatusBadRequest, "profile requires a client or bank")
		return
	}

	profile := models.Profile{
		ProfileName: req.ProfileName,
		ClientID:    req.ClientID,
		BankID:      req.BankID,
		Balance:     decimal.Zero,
	}
	profile.Stamp(time.Now())

	if err := h.DB.Create(&profile).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	util.Success(c, profile, "profile created")
}

func (h *ProfilerHandler) UpdateProfile(c *gin.Context) {
	var req profileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var profile models.Profile
	if err := h.DB.First(&profile, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "profile not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	profile.ProfileName = req.ProfileName
	profile.ClientID = req.ClientID
	profile.BankID = req.BankID
	profile.Restamp(time.Now())

	if err := h.DB.Save(&profile).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	util.Success(c, profile, "profile updated")
}

// DeleteProfile removes a profile and its transactions unconditionally.
func (h *ProfilerHandler) DeleteProfile(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", req.ID).
			Delete(&models.ProfileTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Profile{}, req.ID).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "profile deleted")
}

// ---------- profile transactions ----------

type profileTxReq struct {
	ProfileID         uint            `json:"profile_id" binding:"required"`
	TransactionType   *int            `json:"transaction_type" binding:"required"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Remark            string          `json:"remark" binding:"max=255"`
}

func (h *ProfilerHandler) ListProfileTransactions(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, profileTxSortCols, "create_date", SortDesc)
	search := c.Query("search")

	base := h.DB.Model(&models.ProfileTransaction{})
	filters := gin.H{}
	if s := c.Query("profile_id"); s != "" {
		if n, err := strconv.ParseUint(s, 10, 32); err == nil {
			base = base.Where("profile_id = ?", uint(n))
			filters["profile_id"] = uint(n)
		}
	}
	if s := c.Query("transaction_type"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			base = base.Where("transaction_type = ?", n)
			filters["transaction_type"] = n
		}
	}

	var minAmount, maxAmount *decimal.Decimal
	if s := c.Query("min_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			minAmount = &d
		}
	}
	if s := c.Query("max_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			maxAmount = &d
		}
	}
	if minAmount != nil && maxAmount != nil && maxAmount.LessThan(*minAmount) {
		util.Error(c, http.StatusBadRequest, errAmountRange.Error())
		return
	}
	if minAmount != nil {
		base = base.Where("transaction_amount >= ?", minAmount)
		filters["min_amount"] = minAmount
	}
	if maxAmount != nil {
		base = base.Where("transaction_amount <= ?", maxAmount)
		filters["max_amount"] = maxAmount
	}
	if search != "" {
		base = base.Where("remark LIKE ?", likePattern(search))
	}

	var txs []models.ProfileTransaction
	pg, ok := runList(c, base, pp, sort.orderClause(profileTxSortCols), &txs)
	if !ok {
		return
	}

	util.Success(c, listPayload(txs, pg, filters, search, sort), "")
}

func (h *ProfilerHandler) AutocompleteProfileTransactions(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.ProfileTransaction{}, "remark",
		[]string{"remark"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *ProfilerHandler) CreateProfileTransaction(c *gin.Context) {
	var req profileTxReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if *req.TransactionType != models.TypeDeposit && *req.TransactionType != models.TypeWithdraw {
		util.Error(c, http.StatusBadRequest, "invalid transaction type")
		return
	}
	if err := util.ValidateAmount(req.TransactionAmount); err != nil {
		util.Error(c, http.StatusBadRequest, "please enter a valid amount")
		return
	}

	ptx := models.ProfileTransaction{
		ProfileID:         req.ProfileID,
		TransactionType:   *req.TransactionType,
		TransactionAmount: req.TransactionAmount,
		Remark:            req.Remark,
	}
	ptx.Stamp(time.Now())

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, req.ProfileID).Error; err != nil {
			return err
		}
		if err := tx.Create(&ptx).Error; err != nil {
			return err
		}
		profile.Balance = profile.Balance.Add(ptx.SignedAmount())
		profile.Restamp(time.Now())
		return tx.Save(&profile).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, "profile not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to save transaction")
		}
		return
	}
	util.Success(c, ptx, "transaction created")
}

type profileTxUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	profileTxReq
}

// UpdateProfileTransaction rewrites a profile transaction and applies the
// old/new signed-amount delta to the profile balance in the same database
// transaction. A transaction stays on its profile; moving it is rejected.
func (h *ProfilerHandler) UpdateProfileTransaction(c *gin.Context) {
	var req profileTxUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if *req.TransactionType != models.TypeDeposit && *req.TransactionType != models.TypeWithdraw {
		util.Error(c, http.StatusBadRequest, "invalid transaction type")
		return
	}
	if err := util.ValidateAmount(req.TransactionAmount); err != nil {
		util.Error(c, http.StatusBadRequest, "please enter a valid amount")
		return
	}

	var ptx models.ProfileTransaction
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ptx, req.ID).Error; err != nil {
			return err
		}
		if ptx.ProfileID != req.ProfileID {
			return errProfileMove
		}
		var profile models.Profile
		if err := tx.First(&profile, ptx.ProfileID).Error; err != nil {
			return err
		}

		old := ptx.SignedAmount()
		ptx.TransactionType = *req.TransactionType
		ptx.TransactionAmount = req.TransactionAmount
		ptx.Remark = req.Remark
		ptx.Restamp(time.Now())
		if err := tx.Save(&ptx).Error; err != nil {
			return err
		}

		profile.Balance = profile.Balance.Add(ptx.SignedAmount().Sub(old))
		profile.Restamp(time.Now())
		return tx.Save(&profile).Error
	})
	if err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			util.Error(c, http.StatusNotFound, "transaction not found")
		case errProfileMove:
			util.Error(c, http.StatusBadRequest, errProfileMove.Error())
		default:
			util.Error(c, http.StatusInternalServerError, "failed to save transaction")
		}
		return
	}
	util.Success(c, ptx, "transaction updated")
}

// DeleteProfileTransaction removes a profile transaction and reverses its
// effect on the profile balance.
func (h *ProfilerHandler) DeleteProfileTransaction(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var ptx models.ProfileTransaction
		if err := tx.First(&ptx, req.ID).Error; err != nil {
			return err
		}
		var profile models.Profile
		if err := tx.First(&profile, ptx.ProfileID).Error; err != nil {
			return err
		}
		profile.Balance = profile.Balance.Sub(ptx.SignedAmount())
		profile.Restamp(time.Now())
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		return tx.Delete(&ptx).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to delete transaction")
		}
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "transaction deleted")
}
