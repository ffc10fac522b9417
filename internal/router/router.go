// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"daily-pulse/internal/cache"
	"daily-pulse/internal/database"
	"daily-pulse/internal/handler"
	"daily-pulse/internal/handler/auth"
	"daily-pulse/internal/handler/settings"
	"daily-pulse/internal/middleware"
	"daily-pulse/internal/service"
	"daily-pulse/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tokens *service.TokenService, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 認證：register / login / verify 由 body 的 action 分派
	api.POST("/auth", auth.AuthHandler(db, tokens))

	// 使用者設定，需持有效令牌
	apiSettings := api.Group("/settings", middleware.RequireAuth(tokens))
	apiSettings.GET("", settings.GetSettingsHandler(db, cch))
	apiSettings.POST("", settings.SaveSettingsHandler(db, cch, wp))
}
