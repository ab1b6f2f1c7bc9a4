package curves

import (
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
	"golang.org/x/exp/slices"
)

// ToOrderedPairs returns the persisted form of the curve: [[temperature, duty], ...]
func (c *ControlCurve) ToOrderedPairs() [][]int {
	points := c.Points()
	result := make([][]int, 0, len(points))
	for _, p := range points {
		result = append(result, []int{p.Temperature, p.Duty})
	}
	return result
}

// FromOrderedPairs restores a curve from its persisted form.
//
// Entries which are not pairs are dropped, values are clamped to the curve domain,
// points are sorted by temperature and only the first point per temperature is kept.
// If less than MinPoints usable points remain, a curve made of the fallback points is
// returned instead and fellBack is true.
func FromOrderedPairs(id string, pairs [][]float64, fallback []ControlPoint) (curve *ControlCurve, fellBack bool) {
	var points []ControlPoint
	for _, pair := range pairs {
		if len(pair) != 2 {
			ui.Debug("Curve %s: ignoring malformed point %v", id, pair)
			continue
		}
		points = append(points, ControlPoint{
			Temperature: util.RoundToInt(pair[0]),
			Duty:        util.RoundToInt(pair[1]),
		}.clamped())
	}

	slices.SortStableFunc(points, func(a, b ControlPoint) int {
		return a.Temperature - b.Temperature
	})
	points = slices.CompactFunc(points, func(a, b ControlPoint) bool {
		return a.Temperature == b.Temperature
	})

	curve, err := NewControlCurve(id, points)
	if err == nil {
		return curve, false
	}

	ui.Warning("Curve %s is unusable (%v), using default curve", id, err)
	curve, err = NewControlCurve(id, fallback)
	if err != nil {
		// fallback is always one of the built-in curves or a validated config curve
		panic(err)
	}
	return curve, true
}
