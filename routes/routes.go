package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/business-launch/modules-api/handlers"
	"github.com/business-launch/modules-api/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupModuleRoutes sets up protected business module routes.
func SetupModuleRoutes(rg *gin.RouterGroup, store services.ModuleStore, ws *handlers.WSHandler) {
	h := handlers.NewModuleHandler(store, ws)

	rg.GET("/modules", h.ListModules)
	rg.POST("/modules", h.CreateModule)
	rg.POST("/modules/income", h.NormalizeIncome)
	rg.GET("/modules/:id", h.GetModule) // :id may be the literal "new"
	rg.PUT("/modules/:id", h.UpdateModule)
	rg.PATCH("/modules/:id", h.EditModule)
	rg.DELETE("/modules/:id", h.DeleteModule)
}

// SetupUserRoutes sets up protected user account routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
