package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader is echoed back on every response
	RequestIDHeader = "X-Request-ID"

	requestIDLocal = "request_id"
)

// RequestID func - Middleware assigning every request an id, reusing a sane incoming one
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Locals(requestIDLocal, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// requestLogger returns a log entry tagged with the request id and route
func requestLogger(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.WithField("path", c.Path())
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
