package response

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Envelope is the body of every API response. RequestID echoes the
// X-Request-ID the access log assigned, so a client can quote it back.
type Envelope struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageInternalServerError = "internal server error"
	MessageUpstreamTimeout     = "upstream timed out"
)

// RequestIDKey is the fiber.Ctx locals key holding the request id.
const RequestIDKey = "request_id"

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	rid, _ := c.Locals(RequestIDKey).(string)
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data, RequestID: rid})
}

// DefaultMessage is the message used when a handler supplies none. Every 5xx
// other than a gateway timeout reads as a plain internal error.
func DefaultMessage(status int) string {
	switch {
	case status == fiber.StatusOK:
		return MessageOK
	case status == fiber.StatusGatewayTimeout:
		return MessageUpstreamTimeout
	case status >= 500:
		return MessageInternalServerError
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return "error"
}
