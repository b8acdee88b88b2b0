package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *slog.Logger
}

func NewAccessLogMiddleware(logger *slog.Logger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		if m.logger != nil {
			m.logger.Info("http access",
				slog.String("rid", rid),
				slog.String("ip", c.IP()),
				slog.String("method", c.Method()),
				slog.String("path", c.OriginalURL()),
				slog.Int("status", c.Response().StatusCode()),
				slog.Duration("latency", time.Since(start)),
			)
		}

		return err
	}
}
