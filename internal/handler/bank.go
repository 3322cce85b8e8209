package handler

import (
	"net/http"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BankHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewBankHandler(db *gorm.DB, app config.AppSubConfig) *BankHandler {
	return &BankHandler{DB: db, App: app}
}

var bankSortCols = map[string]string{
	"bank_name":   "bank_name",
	"create_date": "create_date",
}

type bankReq struct {
	BankName      string `json:"bank_name" binding:"required,max=128"`
	AccountNumber string `json:"account_number" binding:"max=32"`
	IFSCCode      string `json:"ifsc_code" binding:"max=16"`
	Branch        string `json:"branch" binding:"max=128"`
}

type bankUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	bankReq
}

// List returns one page of banks.
func (h *BankHandler) List(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, bankSortCols, "bank_name", SortAsc)
	search := c.Query("search")

	base := h.DB.Model(&models.Bank{})
	if search != "" {
		pat := likePattern(search)
		base = base.Where("bank_name LIKE ? OR account_number LIKE ?", pat, pat)
	}

	var banks []models.Bank
	pg, ok := runList(c, base, pp, sort.orderClause(bankSortCols), &banks)
	if !ok {
		return
	}

	util.Success(c, listPayload(banks, pg, gin.H{}, search, sort), "")
}

// Autocomplete returns a short bank name lookup.
func (h *BankHandler) Autocomplete(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.Bank{}, "bank_name",
		[]string{"bank_name", "account_number"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *BankHandler) Create(c *gin.Context) {
	var req bankReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := util.ValidateName(req.BankName); err != nil {
		util.Error(c, http.StatusBadRequest, "bank name is required")
		return
	}

	bank := models.Bank{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		Branch:        req.Branch,
	}
	bank.Stamp(time.Now())

	if err := h.DB.Create(&bank).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save bank")
		return
	}
	util.Success(c, bank, "bank created")
}

func (h *BankHandler) Update(c *gin.Context) {
	var req bankUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var bank models.Bank
	if err := h.DB.First(&bank, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "bank not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	bank.BankName = req.BankName
	bank.AccountNumber = req.AccountNumber
	bank.IFSCCode = req.IFSCCode
	bank.Branch = req.Branch
	bank.Restamp(time.Now())

	if err := h.DB.Save(&bank).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save bank")
		return
	}
	util.Success(c, bank, "bank updated")
}

// Delete removes a bank and all transactions referencing it. The cascade is
// unconditional.
func (h *BankHandler) Delete(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bank_id = ?", req.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Profile{}).Where("bank_id = ?", req.ID).
			Update("bank_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bank{}, req.ID).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete bank")
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "bank deleted")
}
