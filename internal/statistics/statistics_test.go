package statistics

import (
	"strings"
	"testing"

	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/engine"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTelemetrySource struct {
	telemetry *device.Telemetry
}

func (m mockTelemetrySource) DeviceId() string {
	return "kraken"
}

func (m mockTelemetrySource) Last() (device.Telemetry, bool) {
	if m.telemetry == nil {
		return device.Telemetry{}, false
	}
	return *m.telemetry, true
}

type mockSnapshotSource struct {
	snapshot engine.Snapshot
}

func (m mockSnapshotSource) DeviceId() string {
	return "kraken"
}

func (m mockSnapshotSource) Snapshot() engine.Snapshot {
	return m.snapshot
}

func TestTelemetryCollector(t *testing.T) {
	// GIVEN
	collector := NewTelemetryCollector(
		mockTelemetrySource{telemetry: &device.Telemetry{LiquidTemperature: 31.5, FanRpm: 800, PumpRpm: 2000}},
		mockTelemetrySource{},
	)

	// WHEN
	expected := `
# HELP kraken2go_device_fan_rpm Current fan speed
# TYPE kraken2go_device_fan_rpm gauge
kraken2go_device_fan_rpm{id="kraken"} 800
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "kraken2go_device_fan_rpm")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 3, testutil.CollectAndCount(collector))
}

func TestCurveCollector(t *testing.T) {
	// GIVEN
	fan := curves.NewDefaultCurve(curves.FanCurveId)
	pump := curves.NewDefaultCurve(curves.PumpCurveId)
	fan.UpdateLive(40)
	collector := NewCurveCollector(fan, pump)

	// WHEN
	count := testutil.CollectAndCount(collector)

	// THEN
	// points of both curves, duty only for the curve with a live marker
	assert.Equal(t, 3, count)
	assert.Equal(t, 2, testutil.CollectAndCount(collector, "kraken2go_curve_points"))
}

func TestPresetCollector(t *testing.T) {
	// GIVEN
	committed := map[preset.Channel]preset.Preset{
		preset.ChannelLogo: {Channel: preset.ChannelLogo, Mode: "fixed", Colors: []color.RGB{color.White}, Speed: "normal"},
		preset.ChannelRing: {Channel: preset.ChannelRing, Mode: "fading", Colors: []color.RGB{color.White, color.Black}, Speed: "fastest"},
	}
	collector := NewPresetCollector(mockSnapshotSource{snapshot: engine.Snapshot{
		Committed:     committed,
		DirtyChannels: []preset.Channel{preset.ChannelRing},
	}})

	// WHEN
	expected := `
# HELP kraken2go_preset_dirty 1 if the live colors of a channel differ from the committed ones
# TYPE kraken2go_preset_dirty gauge
kraken2go_preset_dirty{channel="logo",id="kraken"} 0
kraken2go_preset_dirty{channel="ring",id="kraken"} 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "kraken2go_preset_dirty")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 6, testutil.CollectAndCount(collector))
}
