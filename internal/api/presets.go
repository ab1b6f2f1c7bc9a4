package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/session"
)

type presetHandlers struct {
	session *session.Session
}

// PresetSnapshot is the response of the preset endpoint
type PresetSnapshot struct {
	Device string `json:"device"`
	// SyncLabel is the mode shared by logo and ring or "mixed-modes"
	SyncLabel string                           `json:"syncLabel"`
	Active    preset.Channel                   `json:"active"`
	Dirty     bool                             `json:"dirty"`
	Live      map[preset.Channel]preset.Preset `json:"live"`
	Committed map[preset.Channel]preset.Preset `json:"committed"`
	Valid     map[preset.Channel][]color.RGB   `json:"valid"`
}

func registerPresetEndpoints(rest *echo.Echo, s *session.Session) {
	h := presetHandlers{session: s}

	group := rest.Group("/preset")
	group.GET("/", h.getPresets)
	group.GET("/:"+urlParamChannel+"/", h.getPreset)
	group.POST("/:"+urlParamChannel+"/", h.editPreset)

	rest.POST("/commit/", h.commit)
	rest.POST("/revert/", h.revert)
}

func (h presetHandlers) snapshot() PresetSnapshot {
	snapshot := h.session.Snapshot()
	return PresetSnapshot{
		Device:    h.session.DeviceId(),
		SyncLabel: snapshot.MirroredMode,
		Active:    snapshot.Active,
		Dirty:     snapshot.Dirty,
		Live:      snapshot.Live,
		Committed: snapshot.Committed,
		Valid:     snapshot.Valid,
	}
}

func (h presetHandlers) getPresets(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, h.snapshot(), indentationChar)
}

func (h presetHandlers) getPreset(c echo.Context) error {
	channel, err := preset.ParseChannel(c.Param(urlParamChannel))
	if err != nil {
		return returnNotFound(c, err)
	}
	return c.JSONPretty(http.StatusOK, h.session.Preset(channel), indentationChar)
}

// selects the channel and applies all given attributes to its live preset
func (h presetHandlers) editPreset(c echo.Context) error {
	channel, err := preset.ParseChannel(c.Param(urlParamChannel))
	if err != nil {
		return returnNotFound(c, err)
	}

	var edit session.PresetEdit
	if err := c.Bind(&edit); err != nil {
		return returnError(c, err, http.StatusBadRequest)
	}
	if err := h.session.Edit(channel, edit); err != nil {
		return returnError(c, err, http.StatusBadRequest)
	}
	return c.JSONPretty(http.StatusOK, h.session.Preset(channel), indentationChar)
}

func (h presetHandlers) commit(c echo.Context) error {
	if err := h.session.Commit(); err != nil {
		return returnError(c, err, http.StatusInternalServerError)
	}
	return c.JSONPretty(http.StatusOK, h.snapshot(), indentationChar)
}

func (h presetHandlers) revert(c echo.Context) error {
	h.session.Revert()
	return c.JSONPretty(http.StatusOK, h.snapshot(), indentationChar)
}
