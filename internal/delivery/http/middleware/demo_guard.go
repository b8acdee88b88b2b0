package middleware

import (
	"jobtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// DemoGuard rejects mutating requests from the read-only demo identity
// before the handler runs. Responds 400, not 403.
func DemoGuard() fiber.Handler {
	return func(c fiber.Ctx) error {
		if IsDemo(c) {
			return NewAppError(fiber.StatusBadRequest, response.MessageDemoReadOnly, nil)
		}
		return c.Next()
	}
}
