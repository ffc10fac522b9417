package router

import (
	"net/http"
	"testing"

	"daily-pulse/internal/cache"
	"daily-pulse/internal/database"
	"daily-pulse/internal/service"
	"daily-pulse/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, service.NewTokenService("s", 0), wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth",
		http.MethodGet + " /api/settings",
		http.MethodPost + " /api/settings",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
