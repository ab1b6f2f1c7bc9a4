package curves

import (
	"github.com/markusressel/kraken2go/internal/util"
	"golang.org/x/exp/slices"
	"sync"
	"time"
)

const (
	FanCurveId  = "fan"
	PumpCurveId = "pump"

	MinTemperature = -3
	MaxTemperature = 110
	MinDuty        = 0
	MaxDuty        = 100

	// MinPoints is the minimum amount of points a curve must have
	MinPoints = 2
)

var (
	DefaultFanPoints = []ControlPoint{
		{Temperature: 25, Duty: 25},
		{Temperature: 35, Duty: 40},
		{Temperature: 45, Duty: 70},
		{Temperature: 60, Duty: 100},
	}
	DefaultPumpPoints = []ControlPoint{
		{Temperature: 20, Duty: 60},
		{Temperature: 30, Duty: 70},
		{Temperature: 40, Duty: 90},
		{Temperature: 50, Duty: 100},
	}
)

// ControlPoint maps a liquid temperature in °C to a duty cycle in percent
type ControlPoint struct {
	Temperature int `json:"temperature"`
	Duty        int `json:"duty"`
}

func (p ControlPoint) clamped() ControlPoint {
	return ControlPoint{
		Temperature: util.Coerce(p.Temperature, MinTemperature, MaxTemperature),
		Duty:        util.Coerce(p.Duty, MinDuty, MaxDuty),
	}
}

// LiveMarker is the most recent telemetry reading shown on a curve
type LiveMarker struct {
	Temperature float64   `json:"temperature"`
	Duty        int       `json:"duty"`
	Time        time.Time `json:"time"`
}

// ControlCurve is a temperature -> duty mapping for a single actuator.
// Points are strictly increasing in temperature and there are always at least MinPoints of them.
//
// Points and live marker have separate locks, so telemetry updates never
// wait for an edit.
type ControlCurve struct {
	id string

	mu     sync.RWMutex
	points []ControlPoint

	liveMu sync.Mutex
	live   *LiveMarker
}

// NewControlCurve creates a curve from the given points.
// Points are clamped to the curve domain and sorted by temperature.
func NewControlCurve(id string, points []ControlPoint) (*ControlCurve, error) {
	var sorted []ControlPoint
	for _, p := range points {
		sorted = append(sorted, p.clamped())
	}
	slices.SortStableFunc(sorted, func(a, b ControlPoint) int {
		return a.Temperature - b.Temperature
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Temperature == sorted[i-1].Temperature {
			return nil, &DuplicateTemperatureError{CurveId: id, Temperature: sorted[i].Temperature}
		}
	}
	if len(sorted) < MinPoints {
		return nil, &MinimumPointsError{CurveId: id, Count: len(sorted)}
	}
	return &ControlCurve{
		id:     id,
		points: sorted,
	}, nil
}

// NewDefaultCurve returns the built-in curve for the given id.
// Unknown ids get the fan curve.
func NewDefaultCurve(id string) *ControlCurve {
	points := DefaultFanPoints
	if id == PumpCurveId {
		points = DefaultPumpPoints
	}
	c, _ := NewControlCurve(id, points)
	return c
}

func (c *ControlCurve) Id() string {
	return c.id
}

// Points returns a copy of all points in temperature order
func (c *ControlCurve) Points() []ControlPoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.points)
}

func (c *ControlCurve) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.points)
}

// AddPoint inserts a new point, keeping temperature order, and returns its index.
// Temperature and duty are clamped to the curve domain.
func (c *ControlCurve) AddPoint(temperature int, duty int) (int, error) {
	p := ControlPoint{Temperature: temperature, Duty: duty}.clamped()

	c.mu.Lock()
	defer c.mu.Unlock()

	index, found := slices.BinarySearchFunc(c.points, p.Temperature, func(e ControlPoint, t int) int {
		return e.Temperature - t
	})
	if found {
		return -1, &DuplicateTemperatureError{CurveId: c.id, Temperature: p.Temperature}
	}
	c.points = slices.Insert(c.points, index, p)
	return index, nil
}

// RemovePoint removes the point at the given index, as long as MinPoints remain
func (c *ControlCurve) RemovePoint(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.points) <= MinPoints {
		return &MinimumPointsError{CurveId: c.id, Count: len(c.points) - 1}
	}
	if index < 0 || index >= len(c.points) {
		return &IndexOutOfRangeError{CurveId: c.id, Index: index, Len: len(c.points)}
	}
	c.points = slices.Delete(c.points, index, index+1)
	return nil
}

// DutyAt interpolates the duty for the given temperature linearly between the two
// surrounding points. Temperatures outside of the curve clamp to the duty of the nearest endpoint.
func (c *ControlCurve) DutyAt(temperature float64) int {
	value := util.CalculateInterpolatedCurveValue(c.steps(), util.InterpolationTypeLinear, temperature)
	return util.RoundToInt(value)
}

func (c *ControlCurve) steps() map[int]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	steps := make(map[int]float64, len(c.points))
	for _, p := range c.points {
		steps[p.Temperature] = float64(p.Duty)
	}
	return steps
}

// UpdateLive stores the current temperature reading and the resulting duty as live marker.
// Stored points are never touched.
func (c *ControlCurve) UpdateLive(temperature float64) LiveMarker {
	marker := LiveMarker{
		Temperature: temperature,
		Duty:        c.DutyAt(temperature),
		Time:        time.Now(),
	}
	c.liveMu.Lock()
	defer c.liveMu.Unlock()
	c.live = &marker
	return marker
}

// Live returns the last live marker, if any
func (c *ControlCurve) Live() (LiveMarker, bool) {
	c.liveMu.Lock()
	defer c.liveMu.Unlock()
	if c.live == nil {
		return LiveMarker{}, false
	}
	return *c.live, true
}

// Copy returns a deep copy of the curve points. The live marker is not copied.
func (c *ControlCurve) Copy() *ControlCurve {
	return &ControlCurve{
		id:     c.id,
		points: c.Points(),
	}
}
