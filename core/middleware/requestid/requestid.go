// Package requestid tags every request with a unique id for log correlation.
package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New returns a middleware that stores a fresh request id in the context
// locals and echoes it back in the X-Request-Id response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("request_id", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}
