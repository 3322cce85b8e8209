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

type ClientHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewClientHandler(db *gorm.DB, app config.AppSubConfig) *ClientHandler {
	return &ClientHandler{DB: db, App: app}
}

var clientSortCols = map[string]string{
	"client_name": "client_name",
	"create_date": "create_date",
}

type clientReq struct {
	ClientName   string `json:"client_name" binding:"required,max=128"`
	Email        string `json:"email" binding:"max=128"`
	MobileNumber string `json:"mobile_number" binding:"max=20"`
	Address      string `json:"address" binding:"max=255"`
}

type clientUpdateReq struct {
	ID uint `json:"id" binding:"required"`
	clientReq
}

func (h *ClientHandler) List(c *gin.Context) {
	pp := parsePageParams(c, h.App)
	sort := parseSort(c, clientSortCols, "client_name", SortAsc)
	search := c.Query("search")

	base := h.DB.Model(&models.Client{})
	if search != "" {
		pat := likePattern(search)
		base = base.Where("client_name LIKE ? OR email LIKE ? OR mobile_number LIKE ?", pat, pat, pat)
	}

	var clients []models.Client
	pg, ok := runList(c, base, pp, sort.orderClause(clientSortCols), &clients)
	if !ok {
		return
	}

	util.Success(c, listPayload(clients, pg, gin.H{}, search, sort), "")
}

func (h *ClientHandler) Autocomplete(c *gin.Context) {
	p := parseAutocomplete(c, h.App)
	items, err := autocompleteQuery(h.DB, &models.Client{}, "client_name",
		[]string{"client_name", "email", "mobile_number"}, p)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondAutocomplete(c, items, p)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := util.ValidateName(req.ClientName); err != nil {
		util.Error(c, http.StatusBadRequest, "client name is required")
		return
	}

	client := models.Client{
		ClientName:   req.ClientName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
	}
	client.Stamp(time.Now())

	if err := h.DB.Create(&client).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save client")
		return
	}
	util.Success(c, client, "client created")
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req clientUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var client models.Client
	if err := h.DB.First(&client, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "client not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	client.ClientName = req.ClientName
	client.Email = req.Email
	client.MobileNumber = req.MobileNumber
	client.Address = req.Address
	client.Restamp(time.Now())

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&client).Error; err != nil {
			return err
		}
		// keep the denormalized name on transactions in sync
		return tx.Model(&models.Transaction{}).Where("client_id = ?", client.ID).
			Update("client_name", client.ClientName).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save client")
		return
	}
	util.Success(c, client, "client updated")
}

// Delete removes a client together with its transactions and profiles.
// The cascade is unconditional.
func (h *ClientHandler) Delete(c *gin.Context) {
	var req idReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", req.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}

		var profileIDs []uint
		if err := tx.Model(&models.Profile{}).Where("client_id = ?", req.ID).
			Pluck("id", &profileIDs).Error; err != nil {
			return err
		}
		if len(profileIDs) > 0 {
			if err := tx.Where("profile_id IN ?", profileIDs).
				Delete(&models.ProfileTransaction{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Profile{}, profileIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Client{}, req.ID).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete client")
		return
	}
	util.Success(c, gin.H{"id": req.ID}, "client deleted")
}
