package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/observability"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

func TestRequestMetricsSeeMappedErrorStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)

	app.Get("/broken", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("status must be one of the known order statuses", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Equal(t, int64(1), metrics.RequestCount("/broken", http.MethodGet, http.StatusBadRequest))
	require.Zero(t, metrics.RequestCount("/broken", http.MethodGet, http.StatusOK))
}

func TestErrorEnvelopeShape(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("product", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
