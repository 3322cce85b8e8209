package router

import (
	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/handler"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api/v1")

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	bankHandler := handler.NewBankHandler(db, cfg.App)
	protected.GET("/banks/paginated", bankHandler.List)
	protected.GET("/banks/autocomplete", bankHandler.Autocomplete)
	protected.POST("/banks", bankHandler.Create)
	protected.PUT("/banks", bankHandler.Update)
	protected.DELETE("/banks", bankHandler.Delete)

	clientHandler := handler.NewClientHandler(db, cfg.App)
	protected.GET("/clients/paginated", clientHandler.List)
	protected.GET("/clients/autocomplete", clientHandler.Autocomplete)
	protected.POST("/clients", clientHandler.Create)
	protected.PUT("/clients", clientHandler.Update)
	protected.DELETE("/clients", clientHandler.Delete)

	cardHandler := handler.NewCardHandler(db, cfg.App)
	protected.GET("/cards/paginated", cardHandler.List)
	protected.GET("/cards/autocomplete", cardHandler.Autocomplete)
	protected.POST("/cards", cardHandler.Create)
	protected.PUT("/cards", cardHandler.Update)
	protected.DELETE("/cards", cardHandler.Delete)

	txHandler := handler.NewTransactionHandler(db, cfg.App)
	protected.GET("/transactions/paginated", txHandler.List)
	protected.GET("/transactions/autocomplete", txHandler.Autocomplete)
	protected.POST("/transactions", txHandler.Create)
	protected.PUT("/transactions", txHandler.Update)
	protected.DELETE("/transactions", txHandler.Delete)

	reportHandler := handler.NewReportHandler(db, cfg.App)
	protected.POST("/transactions/report", reportHandler.Report)
	protected.GET("/transactions/export/xlsx", reportHandler.ExportXLSX)
	protected.GET("/transactions/export/csv", reportHandler.ExportCSV)

	profilerHandler := handler.NewProfilerHandler(db, cfg.App)
	profiler := protected.Group("/profiler")
	profiler.GET("/profiles/paginated", profilerHandler.ListProfiles)
	profiler.GET("/profiles/autocomplete", profilerHandler.AutocompleteProfiles)
	profiler.POST("/profiles", profilerHandler.CreateProfile)
	profiler.PUT("/profiles", profilerHandler.UpdateProfile)
	profiler.DELETE("/profiles", profilerHandler.DeleteProfile)
	profiler.GET("/transactions/paginated", profilerHandler.ListProfileTransactions)
	profiler.GET("/transactions/autocomplete", profilerHandler.AutocompleteProfileTransactions)
	profiler.POST("/transactions", profilerHandler.CreateProfileTransaction)
	profiler.PUT("/transactions", profilerHandler.UpdateProfileTransaction)
	profiler.DELETE("/transactions", profilerHandler.DeleteProfileTransaction)

	logHandler := handler.NewLogHandler(db, cfg.App)
	protected.GET("/logs", logHandler.List)

	return r
}
