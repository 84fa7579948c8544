package http

import (
	"time"

	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/id"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-Id"

func AccessLogFormat(log *zap.Logger) fiber.Handler {
	sugar := log.Sugar()
	// paths that never hit the access log
	excludedPaths := map[string]bool{
		"/health": true,
	}

	return func(c *fiber.Ctx) error {
		if excludedPaths[c.Path()] {
			return c.Next()
		}

		requestId := c.Get(RequestIdHeader)
		if requestId == "" {
			requestId = id.GetUlid()
		}
		c.Set(RequestIdHeader, requestId)

		start := time.Now()

		err := c.Next()

		latency := time.Since(start)

		query := c.Context().QueryArgs().String()
		queryStr := ""
		if query != "" {
			queryStr = "?" + query
		}

		sugar.Infow("HTTP request",
			"requestId", requestId,
			"method", c.Method(),
			"path", c.Path(),
			"query", queryStr,
			"status", c.Response().StatusCode(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
			"latency", latency.String(),
		)

		return err
	}
}
