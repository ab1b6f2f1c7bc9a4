package curves

import "fmt"

// DuplicateTemperatureError is returned when a point is added at a temperature that already has one
type DuplicateTemperatureError struct {
	CurveId     string
	Temperature int
}

func (e *DuplicateTemperatureError) Error() string {
	return fmt.Sprintf("curve %s already has a point at %d°C", e.CurveId, e.Temperature)
}

// MinimumPointsError is returned when a curve would end up with less than MinPoints points
type MinimumPointsError struct {
	CurveId string
	Count   int
}

func (e *MinimumPointsError) Error() string {
	return fmt.Sprintf("curve %s needs at least %d points, got %d", e.CurveId, MinPoints, e.Count)
}

type IndexOutOfRangeError struct {
	CurveId string
	Index   int
	Len     int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("curve %s has no point at index %d (0..%d)", e.CurveId, e.Index, e.Len-1)
}
