package device

import (
	"errors"
)

// Telemetry is the status of a device in its fixed positions
type Telemetry struct {
	LiquidTemperature float64 `json:"liquidTemperature"`
	FanRpm            float64 `json:"fanRpm"`
	PumpRpm           float64 `json:"pumpRpm"`
}

// ParseTelemetry extracts the well known values from a status response.
// Only the liquid temperature is required, missing speeds are reported as 0.
func ParseTelemetry(items []StatusItem) (Telemetry, error) {
	if len(items) <= 0 {
		return Telemetry{}, errors.New("status contains no liquid temperature")
	}
	t := Telemetry{LiquidTemperature: items[0].Value}
	if len(items) > 1 {
		t.FanRpm = items[1].Value
	}
	if len(items) > 2 {
		t.PumpRpm = items[2].Value
	}
	return t, nil
}

// ReadTelemetry reads the status of the given device and extracts its telemetry
func ReadTelemetry(adapter Adapter) (Telemetry, error) {
	items, err := adapter.GetStatus()
	if err != nil {
		return Telemetry{}, err
	}
	t, err := ParseTelemetry(items)
	if err != nil {
		return Telemetry{}, newDeviceError(adapter.GetId(), "status", err)
	}
	return t, nil
}
