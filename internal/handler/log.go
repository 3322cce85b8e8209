package handler

import (
	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LogHandler struct {
	DB  *gorm.DB
	App config.AppSubConfig
}

func NewLogHandler(db *gorm.DB, app config.AppSubConfig) *LogHandler {
	return &LogHandler{DB: db, App: app}
}

// List returns audit log entries, newest first.
func (h *LogHandler) List(c *gin.Context) {
	pp := parsePageParams(c, h.App)

	base := h.DB.Model(&models.AuditLog{})
	if s := c.Query("search"); s != "" {
		base = base.Where("action LIKE ?", likePattern(s))
	}

	var logs []models.AuditLog
	pg, ok := runList(c, base, pp, "created_at DESC, id DESC", &logs)
	if !ok {
		return
	}

	util.Success(c, listPayload(logs, pg, gin.H{}, c.Query("search"),
		SortParams{By: "created_at", Order: SortDesc}), "")
}
