package device

import (
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
	"strconv"
	"strings"
	"time"
)

const cmdTimeout = 5 * time.Second

// CmdDevice delegates all device access to external executables,
// e.g. a small wrapper script around liquidctl.
type CmdDevice struct {
	baseDevice
	Config configuration.CmdDeviceConfig `json:"config"`
}

func (d *CmdDevice) GetStatus() ([]StatusItem, error) {
	conf := d.Config.Status
	if conf == nil {
		return nil, newDeviceError(d.id, "status", ErrUnsupported)
	}

	output, err := util.SafeCmdExecution(conf.Exec, conf.Args, cmdTimeout)
	if err != nil {
		return nil, newDeviceError(d.id, "status", err)
	}

	values, err := util.ParseLabeledValues(strings.NewReader(output))
	if err != nil {
		ui.Warning("Device %s: unable to parse status output of %s", d.id, conf.Exec)
		return nil, newDeviceError(d.id, "status", err)
	}
	return toStatusItems(values), nil
}

// WriteChannel calls the write executable with the configured args, followed by: channel mode speed colors...
// Colors are passed as "rrggbb".
func (d *CmdDevice) WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error {
	conf := d.Config.Write
	if conf == nil {
		return newDeviceError(d.id, "write", ErrUnsupported)
	}

	args := append([]string{}, conf.Args...)
	args = append(args, string(channel), mode, speed)
	for _, c := range colors {
		args = append(args, c.Hex())
	}

	_, err := util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	return newDeviceError(d.id, "write", err)
}

// WriteDuty calls the write executable with the configured args, followed by: duty <fan|pump> <percent>
func (d *CmdDevice) WriteDuty(curveId string, duty int) error {
	conf := d.Config.Write
	if conf == nil {
		return newDeviceError(d.id, "duty", ErrUnsupported)
	}

	args := append([]string{}, conf.Args...)
	args = append(args, "duty", curveId, strconv.Itoa(duty))

	_, err := util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	return newDeviceError(d.id, "duty", err)
}
