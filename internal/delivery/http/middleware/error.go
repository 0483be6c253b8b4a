package middleware

import (
	"context"
	"errors"

	"talent-match/internal/pkg/logger"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMapping pairs a domain sentinel with the status and message reported
// for it. Mappings are checked in order with errors.Is.
type ErrorMapping struct {
	Err     error
	Status  int
	Message string
}

type ErrorMiddleware struct {
	logger   *logger.Logger
	mappings []ErrorMapping
}

func NewErrorMiddleware(log *logger.Logger, mappings ...ErrorMapping) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(log), mappings: mappings}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", "panic", r, "method", c.Method(), "path", c.Path(), "rid", requestID(c))
				err = response.Error(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.resolve(err)
		if status >= fiber.StatusInternalServerError {
			m.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "status", status, "rid", requestID(c), "error", err)
			// Server-side detail stays in the log.
			msg, data = "", nil
		}
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) resolve(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode > 0 {
		return appErr.StatusCode, appErr.Message, appErr.Data
	}

	for _, mp := range m.mappings {
		if errors.Is(err, mp.Err) {
			return mp.Status, mp.Message, nil
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 {
		return fiberErr.Code, fiberErr.Message, nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fiber.StatusGatewayTimeout, "", nil
	}
	return fiber.StatusInternalServerError, "", nil
}

func requestID(c fiber.Ctx) string {
	rid, _ := c.Locals(response.RequestIDKey).(string)
	return rid
}
