package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/middleware"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB          *gorm.DB
	JWTSecret   string
	JWTIssuer   string
	ExpireHours int
	BcryptCost  int
}

func NewAuthHandler(db *gorm.DB, jwtSecret, jwtIssuer string, expireHours, bcryptCost int) *AuthHandler {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:          db,
		JWTSecret:   jwtSecret,
		JWTIssuer:   jwtIssuer,
		ExpireHours: expireHours,
		BcryptCost:  bcryptCost,
	}
}

type registerReq struct {
	Username    string `json:"username" binding:"required,min=3,max=64"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	DisplayName string `json:"display_name" binding:"max=64"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid username or password")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	var count int64
	if err := h.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	util.Success(c, user, "registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid username or password")
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, "wrong username or password")
		} else {
			util.Error(c, http.StatusInternalServerError, "query failed")
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		util.Error(c, http.StatusUnauthorized, "wrong username or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.ID,
		time.Duration(h.ExpireHours)*time.Hour)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LastLoginIP = c.ClientIP()
	_ = h.DB.Save(&user).Error

	util.Success(c, util.Response{
		"token": token,
		"user":  user,
	}, "logged in")
}

// GetMe returns the authenticated user.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}
	util.Success(c, user, "")
}
