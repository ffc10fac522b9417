package middleware

import (
	"net/http"

	"daily-pulse/internal/dto"
	"daily-pulse/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// HeaderAuthToken 前端沿用的自訂認證標頭
const HeaderAuthToken = "X-Auth-Token"

// RequireAuth 驗證 X-Auth-Token 的簽章令牌，通過後將 claims 放入 context
// 缺漏或無效一律回 401，不區分原因
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(HeaderAuthToken)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "authorization required"})
			}
			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token"})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
