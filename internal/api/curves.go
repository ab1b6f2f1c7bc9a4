package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/qdm12/reprint"
)

type curveHandlers struct {
	session *session.Session
}

// CurveView is the API representation of a control curve
type CurveView struct {
	Id     string                `json:"id"`
	Points []curves.ControlPoint `json:"points"`
	Live   *curves.LiveMarker    `json:"live,omitempty"`
}

type pointRequest struct {
	Temperature *int `json:"temperature"`
	Duty        *int `json:"duty"`
}

func registerCurveEndpoints(rest *echo.Echo, s *session.Session) {
	h := curveHandlers{session: s}

	group := rest.Group("/curve")
	group.GET("/", h.getCurves)
	group.GET("/:"+urlParamId+"/", h.getCurve)
	group.POST("/:"+urlParamId+"/point/", h.addPoint)
	group.DELETE("/:"+urlParamId+"/point/:"+urlParamIndex+"/", h.removePoint)
}

func newCurveView(c *curves.ControlCurve) CurveView {
	view := CurveView{
		Id:     c.Id(),
		Points: c.Points(),
	}
	if marker, ok := c.Live(); ok {
		view.Live = &marker
	}
	return view
}

func (h curveHandlers) getCurves(c echo.Context) error {
	var views []CurveView
	for _, id := range h.session.CurveIds() {
		curve, err := h.session.Curve(id)
		if err != nil {
			return returnError(c, err, http.StatusInternalServerError)
		}
		views = append(views, newCurveView(curve))
	}
	data := reprint.This(views)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h curveHandlers) getCurve(c echo.Context) error {
	curve, err := h.session.Curve(c.Param(urlParamId))
	if err != nil {
		return returnNotFound(c, err)
	}
	return c.JSONPretty(http.StatusOK, newCurveView(curve), indentationChar)
}

func (h curveHandlers) addPoint(c echo.Context) error {
	var request pointRequest
	if err := c.Bind(&request); err != nil {
		return returnError(c, err, http.StatusBadRequest)
	}
	if request.Temperature == nil || request.Duty == nil {
		return c.JSONPretty(http.StatusBadRequest, &Result{
			Name:    errorName(http.StatusBadRequest),
			Message: "temperature and duty are required",
		}, indentationChar)
	}

	id := c.Param(urlParamId)
	if _, err := h.session.AddCurvePoint(id, *request.Temperature, *request.Duty); err != nil {
		return returnError(c, err, http.StatusInternalServerError)
	}
	return h.getCurve(c)
}

func (h curveHandlers) removePoint(c echo.Context) error {
	index, err := strconv.Atoi(c.Param(urlParamIndex))
	if err != nil {
		return returnError(c, err, http.StatusBadRequest)
	}

	id := c.Param(urlParamId)
	if err := h.session.RemoveCurvePoint(id, index); err != nil {
		return returnError(c, err, http.StatusInternalServerError)
	}
	return h.getCurve(c)
}
