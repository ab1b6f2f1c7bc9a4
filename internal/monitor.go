package internal

import (
	"context"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
)

// TelemetryMonitor periodically reads the status of the session device and
// moves the live markers of its curves to the averaged liquid temperature.
type TelemetryMonitor struct {
	session     *session.Session
	pollingRate time.Duration

	mu          sync.Mutex
	temperature *rolling.PointPolicy
	last        *device.Telemetry
}

// NewTelemetryMonitor creates a monitor whose moving window is seeded with the first reading,
// so the average does not start at 0.
func NewTelemetryMonitor(s *session.Session, pollingRate time.Duration, windowSize int) *TelemetryMonitor {
	if windowSize <= 0 {
		windowSize = 1
	}
	m := &TelemetryMonitor{
		session:     s,
		pollingRate: pollingRate,
		temperature: util.CreateRollingWindow(windowSize),
	}

	initial, err := device.ReadTelemetry(s.Adapter())
	if err != nil {
		ui.Warning("Error reading initial telemetry of device %s: %v", s.DeviceId(), err)
		return m
	}
	for i := 0; i < windowSize; i++ {
		m.temperature.Append(initial.LiquidTemperature)
	}
	m.publish(initial)
	return m
}

func (m *TelemetryMonitor) Run(ctx context.Context) error {
	tick := time.NewTicker(m.pollingRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if err := m.Update(); err != nil {
				ui.Warning("Error reading telemetry of device %s: %v", m.session.DeviceId(), err)
			}
		}
	}
}

// Update reads the current telemetry once and appends it to the moving window
func (m *TelemetryMonitor) Update() error {
	t, err := device.ReadTelemetry(m.session.Adapter())
	if err != nil {
		return err
	}
	m.temperature.Append(t.LiquidTemperature)
	m.publish(t)
	return nil
}

func (m *TelemetryMonitor) publish(raw device.Telemetry) {
	averaged := raw
	averaged.LiquidTemperature = util.GetWindowAvg(m.temperature)

	m.mu.Lock()
	m.last = &averaged
	m.mu.Unlock()

	m.session.UpdateTelemetry(averaged)
}

// Last returns the last telemetry reading with the liquid temperature averaged over the window
func (m *TelemetryMonitor) Last() (device.Telemetry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return device.Telemetry{}, false
	}
	return *m.last, true
}

func (m *TelemetryMonitor) DeviceId() string {
	return m.session.DeviceId()
}
