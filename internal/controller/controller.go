package controller

import (
	"context"
	"errors"
	"time"

	"github.com/markusressel/kraken2go/internal/control_loop"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
)

type DutyController interface {
	Run(ctx context.Context) error
	UpdateDuty() error
}

// dutyController applies the duty of a curve at the current liquid temperature to the device.
// The temperature is taken from the live marker of the curve, which is maintained by the telemetry monitor.
type dutyController struct {
	deviceId    string
	writer      device.DutyWriter
	curve       *curves.ControlCurve
	loop        control_loop.ControlLoop
	updateRate  time.Duration
	lastSetDuty *int
}

func NewDutyController(
	deviceId string,
	writer device.DutyWriter,
	curve *curves.ControlCurve,
	loop control_loop.ControlLoop,
	updateRate time.Duration,
) DutyController {
	return &dutyController{
		deviceId:   deviceId,
		writer:     writer,
		curve:      curve,
		loop:       loop,
		updateRate: updateRate,
	}
}

func (f *dutyController) Run(ctx context.Context) error {
	ui.Info("Starting duty controller for %s of device %s", f.curve.Id(), f.deviceId)

	tick := time.NewTicker(f.updateRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping duty controller for %s of device %s...", f.curve.Id(), f.deviceId)
			return nil
		case <-tick.C:
			err := f.UpdateDuty()
			if errors.Is(err, device.ErrUnsupported) {
				ui.WarningAndNotify("Duty Control Stopped", "Device %s does not support setting the %s duty, stopping controller", f.deviceId, f.curve.Id())
				return nil
			}
			if err != nil {
				ui.Warning("Error setting %s duty of device %s: %v", f.curve.Id(), f.deviceId, err)
			}
		}
	}
}

// UpdateDuty writes the duty for the last known temperature, if it changed since the last write
func (f *dutyController) UpdateDuty() error {
	marker, ok := f.curve.Live()
	if !ok {
		// no telemetry yet
		return nil
	}

	target := f.loop.Cycle(float64(marker.Duty))
	duty := util.Coerce(util.RoundToInt(target), curves.MinDuty, curves.MaxDuty)
	if f.lastSetDuty != nil && *f.lastSetDuty == duty {
		return nil
	}

	ui.Debug("Setting %s duty of device %s to %d%% (%.1f°C)", f.curve.Id(), f.deviceId, duty, marker.Temperature)
	if err := f.writer.WriteDuty(f.curve.Id(), duty); err != nil {
		return err
	}
	f.lastSetDuty = &duty
	return nil
}
