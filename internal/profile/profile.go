package profile

import (
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/preset"
)

// Profile is everything kraken2go persists for a single device
type Profile struct {
	// Device is the id of the device this profile was created for, if known
	Device *string
	Logo   preset.Preset
	Ring   preset.Preset
	// Fan and Pump are nil if the document contains no curve for them
	Fan  *curves.ControlCurve
	Pump *curves.ControlCurve
}

// CurveDefaults are the curves used when a document contains no usable curve
type CurveDefaults struct {
	Fan  []curves.ControlPoint
	Pump []curves.ControlPoint
}

var BuiltinCurveDefaults = CurveDefaults{
	Fan:  curves.DefaultFanPoints,
	Pump: curves.DefaultPumpPoints,
}

// Default creates the profile every new session starts with
func Default(caps catalog.Capabilities, defaults CurveDefaults) *Profile {
	logo, ring := preset.DefaultPresets(caps)
	return &Profile{
		Logo: logo,
		Ring: ring,
		Fan:  defaults.Curve(curves.FanCurveId),
		Pump: defaults.Curve(curves.PumpCurveId),
	}
}

// Points returns the default points of the given curve.
// Unusable points are replaced by the built-in curve.
func (d CurveDefaults) Points(id string) []curves.ControlPoint {
	points := d.Fan
	if id == curves.PumpCurveId {
		points = d.Pump
	}
	if _, err := curves.NewControlCurve(id, points); err != nil {
		return curves.NewDefaultCurve(id).Points()
	}
	return points
}

// Curve creates a new default curve with the given id
func (d CurveDefaults) Curve(id string) *curves.ControlCurve {
	c, err := curves.NewControlCurve(id, d.Points(id))
	if err != nil {
		return curves.NewDefaultCurve(id)
	}
	return c
}

// FanCurve returns the fan curve of this profile or a default one
func (p *Profile) FanCurve(defaults CurveDefaults) *curves.ControlCurve {
	if p.Fan != nil {
		return p.Fan
	}
	return defaults.Curve(curves.FanCurveId)
}

// PumpCurve returns the pump curve of this profile or a default one
func (p *Profile) PumpCurve(defaults CurveDefaults) *curves.ControlCurve {
	if p.Pump != nil {
		return p.Pump
	}
	return defaults.Curve(curves.PumpCurveId)
}

// DeviceId returns the device id of this profile or an empty string
func (p *Profile) DeviceId() string {
	if p.Device == nil {
		return ""
	}
	return *p.Device
}
