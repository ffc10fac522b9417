// File: internal/handler/settings/settings.go
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"daily-pulse/internal/cache"
	"daily-pulse/internal/database"
	"daily-pulse/internal/dto"
	"daily-pulse/internal/middleware"
	"daily-pulse/internal/repository"
	"daily-pulse/internal/service"
	"daily-pulse/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// cacheTTL 設定快取的存活時間
const cacheTTL = 5 * time.Minute

func cacheKey(userID int) string {
	return fmt.Sprintf("settings:%d", userID)
}

func claimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok
}

// GetSettingsHandler 取得指標選擇與 onboarding 狀態
// 先查快取，未命中再查資料庫；從未儲存過設定回傳空陣列與 false，不回 404
// @Summary     取得使用者設定
// @Tags        settings
// @Produce     json
// @Success     200 {object} dto.SettingsResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /settings [get]
func GetSettingsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "authorization required"})
		}

		ctx := c.Request().Context()
		key := cacheKey(claims.UserID)

		if cached, err := cch.Get(ctx, key).Result(); err == nil {
			var resp dto.SettingsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return c.JSON(http.StatusOK, resp)
			}
			// 快取內容損毀時改查資料庫
		}

		metrics, onboarding, err := repository.GetUserSettings(ctx, db, claims.UserID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
			}
			metrics, onboarding = []any{}, false
		}
		if metrics == nil {
			metrics = []any{}
		}

		resp := dto.SettingsResponse{Metrics: metrics, OnboardingCompleted: onboarding}
		if b, err := json.Marshal(resp); err == nil {
			// 快取寫入失敗不影響回應
			cch.Set(ctx, key, b, cacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// SaveSettingsHandler 儲存指標選擇 (upsert) 並將 onboarding 標記為完成
// metrics 內容不做驗證，原樣存入並回傳；未提供時視為空陣列
// 寫入後同步作廢快取，並交由 worker pool 以新值回填
// @Summary     儲存使用者設定
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       body body     dto.SaveSettingsRequest true "指標選擇"
// @Success     200  {object} dto.SaveSettingsResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /settings [post]
func SaveSettingsHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "authorization required"})
		}

		var req dto.SaveSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		// 未提供 metrics 視為空陣列；顯式 null 與非陣列一律 400
		metrics := []any{}
		if len(req.Metrics) > 0 {
			if err := json.Unmarshal(req.Metrics, &metrics); err != nil || metrics == nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "metrics must be a list"})
			}
		}

		ctx := c.Request().Context()
		if err := repository.UpsertUserSettings(ctx, db, claims.UserID, metrics); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}
		// 無論 metrics 是否為空都標記完成
		if err := repository.SetOnboardingCompleted(ctx, db, claims.UserID); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}

		key := cacheKey(claims.UserID)
		cch.Del(ctx, key)

		fresh := dto.SettingsResponse{Metrics: metrics, OnboardingCompleted: true}
		if b, err := json.Marshal(fresh); err == nil {
			wp.Submit(func() {
				cch.Set(context.Background(), key, b, cacheTTL)
			})
		}

		return c.JSON(http.StatusOK, dto.SaveSettingsResponse{Success: true, Metrics: metrics})
	}
}
