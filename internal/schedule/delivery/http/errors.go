package http

import (
	"errors"
	"net/http"
	"strings"

	"daily-planner/internal/schedule"
	pkgErrors "daily-planner/pkg/errors"
)

var (
	errAudioTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Audio file too large")
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be svg or json")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes a 500 without leaking its text.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrNoInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, schedule.MessageNoInput)
	case errors.Is(err, schedule.ErrScheduleLocked):
		return pkgErrors.NewHTTPError(http.StatusLocked, schedule.MessageLocked)
	case errors.Is(err, schedule.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, schedule.MessageWrongPass)
	case errors.Is(err, schedule.ErrExternalService):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, schedule.ErrorMessagePrefix+externalCause(err))
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// externalCause strips the sentinel prefix so clients see only the provider's message.
func externalCause(err error) string {
	msg := err.Error()
	prefix := schedule.ErrExternalService.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}

// errorData is the payload sent alongside a mapped error.
func errorData(err error) map[string]interface{} {
	if errors.Is(err, schedule.ErrScheduleLocked) {
		return map[string]interface{}{"time_range": notAvailable}
	}
	return nil
}
