package http

import (
	"errors"
	"net/http"

	"paperwork/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps application errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and replaced by a
// generic message so storage details do not leak to the desk.
func (s *Server) fail(ctx echo.Context, err error, internalMessage string) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), internalMessage,
			"error", err,
			"path", ctx.Path(),
		)
		message = internalMessage
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
