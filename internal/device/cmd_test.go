package device

import (
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os/exec"
	"testing"
)

func getEchoPath() string {
	// unlikely to fail
	p, _ := exec.LookPath("echo")
	return p
}

func createCmdDevice(t *testing.T, config configuration.CmdDeviceConfig) *CmdDevice {
	adapter, err := NewDevice(configuration.DeviceConfig{
		ID:      "kraken",
		Catalog: catalog.BuiltinKrakenX,
		Cmd:     &config,
	}, nil)
	require.NoError(t, err)
	return adapter.(*CmdDevice)
}

func TestCmdDevice_GetStatus(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{
		Status: &configuration.ExecConfig{
			Exec: getEchoPath(),
			Args: []string{"Liquid", "temperature", "31.5"},
		},
	})

	// WHEN
	items, err := d.GetStatus()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []StatusItem{{Label: LabelLiquidTemperature, Value: 31.5}}, items)
}

func TestCmdDevice_GetStatusInvalidOutput(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{
		Status: &configuration.ExecConfig{
			Exec: getEchoPath(),
			Args: []string{"hot"},
		},
	})

	// WHEN
	_, err := d.GetStatus()

	// THEN
	var deviceErr *DeviceError
	assert.ErrorAs(t, err, &deviceErr)
}

func TestCmdDevice_GetStatusNotConfigured(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{})

	// WHEN
	_, err := d.GetStatus()

	// THEN
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCmdDevice_WriteChannel(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{
		Write: &configuration.ExecConfig{
			Exec: getEchoPath(),
			Args: []string{"--device", "kraken"},
		},
	})

	// WHEN
	err := d.WriteChannel(preset.ChannelRing, "wave", []color.RGB{color.White, color.Black}, "normal")

	// THEN
	assert.NoError(t, err)
}

func TestCmdDevice_WriteChannelMissingExecutable(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{
		Write: &configuration.ExecConfig{
			Exec: "/does/not/exist",
		},
	})

	// WHEN
	err := d.WriteChannel(preset.ChannelLogo, "fixed", nil, "normal")

	// THEN
	var deviceErr *DeviceError
	require.ErrorAs(t, err, &deviceErr)
	assert.Equal(t, "write", deviceErr.Op)
}

func TestCmdDevice_WriteChannelNotConfigured(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{})

	// WHEN
	err := d.WriteChannel(preset.ChannelLogo, "fixed", nil, "normal")

	// THEN
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCmdDevice_WriteDuty(t *testing.T) {
	// GIVEN
	d := createCmdDevice(t, configuration.CmdDeviceConfig{
		Write: &configuration.ExecConfig{
			Exec: getEchoPath(),
		},
	})

	// WHEN
	err := d.WriteDuty("pump", 70)

	// THEN
	assert.NoError(t, err)
}
