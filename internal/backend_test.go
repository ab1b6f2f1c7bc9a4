package internal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/persistence"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/oklog/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createConfiguration(t *testing.T, ids ...string) configuration.Configuration {
	dir := t.TempDir()
	config := configuration.Configuration{
		DbPath:      filepath.Join(dir, "kraken2go.db"),
		ProfilePath: filepath.Join(dir, "profile.json"),
	}
	for _, id := range ids {
		config.Devices = append(config.Devices, configuration.DeviceConfig{
			ID:      id,
			Catalog: "kraken-x",
			Virtual: &configuration.VirtualDeviceConfig{},
		})
	}
	return config
}

func createPersistence(t *testing.T, config configuration.Configuration) persistence.Persistence {
	pers := persistence.NewPersistence(config.DbPath)
	require.NoError(t, pers.Init())
	return pers
}

func TestResolveDeviceId_Explicit(t *testing.T) {
	// GIVEN
	config := createConfiguration(t, "a", "b")
	config.Device = "a"

	// WHEN
	id, err := ResolveDeviceId("b", &config, nil)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "b", id)
}

func TestResolveDeviceId_ExplicitUnknown(t *testing.T) {
	// GIVEN
	config := createConfiguration(t, "a")

	// WHEN
	_, err := ResolveDeviceId("x", &config, nil)

	// THEN
	assert.ErrorIs(t, err, device.ErrNotFound)
}

func TestResolveDeviceId_ConfiguredDefault(t *testing.T) {
	// GIVEN
	config := createConfiguration(t, "a", "b")
	config.Device = "b"
	pers := createPersistence(t, config)
	require.NoError(t, pers.SaveActiveDevice("a"))

	// WHEN
	id, err := ResolveDeviceId("", &config, pers)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "b", id)
}

func TestResolveDeviceId_LastUsed(t *testing.T) {
	// GIVEN
	config := createConfiguration(t, "a", "b")
	pers := createPersistence(t, config)
	require.NoError(t, pers.SaveActiveDevice("b"))

	// WHEN
	id, err := ResolveDeviceId("", &config, pers)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "b", id)
}

func TestResolveDeviceId_LastUsedNoLongerConfigured(t *testing.T) {
	// GIVEN
	config := createConfiguration(t, "a", "b")
	pers := createPersistence(t, config)
	require.NoError(t, pers.SaveActiveDevice("removed"))

	// WHEN
	id, err := ResolveDeviceId("", &config, pers)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "a", id)
}

func TestResolveDeviceId_NoDevices(t *testing.T) {
	// GIVEN
	config := createConfiguration(t)

	// WHEN
	_, err := ResolveDeviceId("", &config, nil)

	// THEN
	assert.Error(t, err)
}

func TestOpenSession(t *testing.T) {
	// GIVEN
	configuration.CurrentConfig = createConfiguration(t, "kraken", "smart")
	pers := createPersistence(t, configuration.CurrentConfig)

	// WHEN
	s, err := OpenSession("smart", pers)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "smart", s.DeviceId())
	assert.Equal(t, "super-fixed", s.Preset(preset.ChannelRing).Mode)
	last, err := pers.LoadActiveDevice()
	assert.NoError(t, err)
	assert.Equal(t, "smart", last)
}

func TestAddDutyControllers(t *testing.T) {
	// GIVEN
	adapter, s := createVirtualSession(t, 45)
	s.UpdateTelemetry(device.Telemetry{LiquidTemperature: 45})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	addDutyControllers(ctx, &g, s, configuration.ControlConfig{
		Enabled:            true,
		AdjustmentTickRate: 10 * time.Millisecond,
	}, cancel)
	g.Add(func() error {
		deadline := time.After(5 * time.Second)
		for len(adapter.Duties()) < 2 {
			select {
			case <-deadline:
				return errors.New("no duty written")
			case <-time.After(10 * time.Millisecond):
			}
		}
		return nil
	}, func(err error) {
		cancel()
	})

	// WHEN
	err := g.Run()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		curves.FanCurveId:  70,
		curves.PumpCurveId: 95,
	}, adapter.Duties())
}
