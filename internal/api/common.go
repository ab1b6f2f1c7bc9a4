package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/engine"
	"github.com/markusressel/kraken2go/internal/session"
)

// statusOf maps domain errors to a http status code, fallback is used for everything else
func statusOf(err error, fallback int) int {
	var invalidPreset *engine.InvalidPresetError
	var duplicate *curves.DuplicateTemperatureError
	var minimum *curves.MinimumPointsError
	var outOfRange *curves.IndexOutOfRangeError
	var deviceErr *device.DeviceError

	switch {
	case errors.As(err, &invalidPreset), errors.As(err, &duplicate), errors.As(err, &minimum):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrCurveNotFound), errors.As(err, &outOfRange):
		return http.StatusNotFound
	case errors.As(err, &deviceErr):
		return http.StatusBadGateway
	default:
		return fallback
	}
}

func errorName(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusBadGateway:
		return "Device Error"
	default:
		return "Unknown Error"
	}
}

// return a "not found" message
func returnNotFound(c echo.Context, err error) error {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    errorName(http.StatusNotFound),
		Message: err.Error(),
	}, indentationChar)
}

// return the error message of an error, using the status code of its type
func returnError(c echo.Context, e error, fallback int) error {
	status := statusOf(e, fallback)
	return c.JSONPretty(status, &Result{
		Name:    errorName(status),
		Message: e.Error(),
	}, indentationChar)
}
