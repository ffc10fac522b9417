package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"daily-pulse/internal/model"
	"daily-pulse/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(e *echo.Echo, token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", 0)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	h := RequireAuth(tokens)(next)

	t.Run("missing header", func(t *testing.T) {
		ctx, rec := newCtx(e, "")
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "error")
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx, rec := newCtx(e, "garbage")
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("numeric id is rejected", func(t *testing.T) {
		// 舊版前端直接送 user id，不再接受
		ctx, rec := newCtx(e, "42")
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := service.NewTokenService("other", 0).Issue(model.User{ID: 1, Email: "a@x.com"})
		require.NoError(t, err)
		ctx, rec := newCtx(e, other)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		token, err := tokens.Issue(model.User{ID: 7, Email: "alice@example.com"})
		require.NoError(t, err)
		ctx, rec := newCtx(e, token)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		claims, ok := ctx.Get(ContextUserKey).(*service.CustomClaims)
		require.True(t, ok)
		require.Equal(t, 7, claims.UserID)
		require.Equal(t, "alice@example.com", claims.Email)
	})
}
