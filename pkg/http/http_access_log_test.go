package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccessLogRequestId(t *testing.T) {
	app := fiber.New()
	app.Use(AccessLogFormat(zap.NewNop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	t.Run("assigns a request id when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.NotEmpty(t, resp.Header.Get(RequestIdHeader))
	})

	t.Run("echoes a caller-supplied request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIdHeader, "caller-id-1")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "caller-id-1", resp.Header.Get(RequestIdHeader))
	})

	t.Run("distinct requests get distinct ids", func(t *testing.T) {
		first, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		defer first.Body.Close()
		second, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		defer second.Body.Close()

		assert.NotEqual(t, first.Header.Get(RequestIdHeader), second.Header.Get(RequestIdHeader))
	})
}
