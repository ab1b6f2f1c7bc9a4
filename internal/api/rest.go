package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId      = "id"
	urlParamChannel = "channel"
	urlParamIndex   = "index"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// CreateRestService creates the REST API of the given session.
// Request metrics are registered with registerer.
func CreateRestService(s *session.Session, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "kraken2go_api",
		Registerer: registerer,
	}))

	echoRest.Use(middleware.Recover())

	echoRest.GET("/alive/", isAlive)

	registerPresetEndpoints(echoRest, s)
	registerCurveEndpoints(echoRest, s)
	registerDeviceEndpoints(echoRest, s)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
