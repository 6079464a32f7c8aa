package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"portfolioapi/internal/http/middleware"
)

const detailInternal = "Internal server error"

// errorPayload is the body of every error response.
type errorPayload struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// apiError carries the response status and client-facing detail of a failed
// request. The wrapped error is logged, never sent.
type apiError struct {
	status int
	detail string
	op     string
	err    error
}

func (e *apiError) Error() string {
	if e.err == nil {
		return e.detail
	}
	return e.detail + ": " + e.err.Error()
}

func (e *apiError) Unwrap() error { return e.err }

// StatusCode lets middleware observe the status before the ErrorHandler runs.
func (e *apiError) StatusCode() int { return e.status }

// requestError reports a problem with the request itself (400).
func requestError(detail string, err error) error {
	return &apiError{status: fiber.StatusBadRequest, detail: detail, err: err}
}

// notFoundError reports a missing resource (404).
func notFoundError(detail string, err error) error {
	return &apiError{status: fiber.StatusNotFound, detail: detail, err: err}
}

// internalError reports an unexpected failure of op (500). It is logged with op.
func internalError(op, detail string, err error) error {
	return &apiError{status: fiber.StatusInternalServerError, detail: detail, op: op, err: err}
}

// ErrorHandler returns the Fiber error handler that maps every error to the
// {"detail": ...} envelope and logs server-side failures.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		detail := detailInternal
		op := ""

		var ae *apiError
		var fe *fiber.Error
		switch {
		case errors.As(err, &ae):
			status, detail, op = ae.status, ae.detail, ae.op
		case errors.As(err, &fe):
			status, detail = fe.Code, fe.Message
		}

		rid := middleware.GetRequestID(c)
		if status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("op", op).
				Str("request_id", rid).
				Str("path", c.Path()).
				Int("status", status).
				Msg("request failed")
		}

		return c.Status(status).JSON(errorPayload{Detail: detail, RequestID: rid})
	}
}
