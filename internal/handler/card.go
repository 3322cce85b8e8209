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

type CardHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewCardHandler(db *gorm.DB, app config.AppSubConfig) *CardHandler {
	return &CardHandler{DB: db, App: app}
}

var cardSortCols = map[string]string{
	"card_name":   "card_name",
	"create_date": "create_date",
}

type cardReq struct {
	CardName   string `json:"card_name" binding:"required,max=128"`
	CardNumber string `json:"card_number" binding:"max=32"`
}

type cardUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	cardReq
}

func (h *CardHandler) List(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, cardSortCols, "card_name", SortAsc)
	search := c.Query("search")

	base := h.DB.Model(&models.Card{})
	if search != "" {
		pat := likePattern(search)
		base = base.Where("card_name LIKE ? OR card_number LIKE ?", pat, pat)
	}

	var cards []models.Card
	pg, ok := runList(c, base, pp, sort.orderClause(cardSortCols), &cards)
	if !ok {
		return
	}

	util.Success(c, listPayload(cards, pg, gin.H{}, search, sort), "")
}

func (h *CardHandler) Autocomplete(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.Card{}, "card_name",
		[]string{"card_name", "card_number"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *CardHandler) Create(c *gin.Context) {
	var req cardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	card := models.Card{
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
	}
	card.Stamp(time.Now())

	if err := h.DB.Create(&card).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save card")
		return
	}
	util.Success(c, card, "card created")
}

func (h *CardHandler) Update(c *gin.Context) {
	var req cardUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var card models.Card
	if err := h.DB.First(&card, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "card not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	card.CardName = req.CardName
	card.CardNumber = req.CardNumber
	card.Restamp(time.Now())

	if err := h.DB.Save(&card).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save card")
		return
	}
	util.Success(c, card, "card updated")
}

// Delete removes a card and all transactions charged against it.
func (h *CardHandler) Delete(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", req.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Card{}, req.ID).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete card")
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "card deleted")
}
