package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/session"
)

// DeviceStatus is the response of the device endpoint
type DeviceStatus struct {
	Id     string                       `json:"id"`
	Status []device.StatusItem          `json:"status"`
	Modes  map[string]catalog.ColorMode `json:"modes"`
	Speeds map[string]int               `json:"speeds"`
}

func registerDeviceEndpoints(rest *echo.Echo, s *session.Session) {
	rest.GET("/device/", func(c echo.Context) error {
		adapter := s.Adapter()
		status, err := adapter.GetStatus()
		if err != nil {
			return returnError(c, err, http.StatusBadGateway)
		}
		return c.JSONPretty(http.StatusOK, DeviceStatus{
			Id:     adapter.GetId(),
			Status: status,
			Modes:  adapter.GetColorModes(),
			Speeds: adapter.GetSpeedNames(),
		}, indentationChar)
	})
}
