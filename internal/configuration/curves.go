package configuration

import (
	"github.com/markusressel/kraken2go/internal/curves"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type CurvesConfig struct {
	Fan  CurvePoints `json:"fan"`
	Pump CurvePoints `json:"pump"`
}

// CurvePoints maps a temperature to a duty cycle in percent
type CurvePoints map[int]int

// ToControlPoints returns the points in temperature order
func (p CurvePoints) ToControlPoints() []curves.ControlPoint {
	temperatures := maps.Keys(p)
	slices.Sort(temperatures)

	result := make([]curves.ControlPoint, 0, len(p))
	for _, t := range temperatures {
		result = append(result, curves.ControlPoint{Temperature: t, Duty: p[t]})
	}
	return result
}

// FanPoints returns the configured default fan curve, or the builtin one
func (c CurvesConfig) FanPoints() []curves.ControlPoint {
	if len(c.Fan) <= 0 {
		return curves.DefaultFanPoints
	}
	return c.Fan.ToControlPoints()
}

// PumpPoints returns the configured default pump curve, or the builtin one
func (c CurvesConfig) PumpPoints() []curves.ControlPoint {
	if len(c.Pump) <= 0 {
		return curves.DefaultPumpPoints
	}
	return c.Pump.ToControlPoints()
}
