package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/kraken2go/internal/api"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/control_loop"
	"github.com/markusressel/kraken2go/internal/controller"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/persistence"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/markusressel/kraken2go/internal/statistics"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	pers, err := initPersistence()
	if err != nil {
		ui.Fatal("Unable to initialize persistence: %v", err)
	}

	s, err := OpenSession("", pers)
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}
	ui.Info("Using device: %s", s.DeviceId())

	// restore the last committed state on the device
	if err := s.CommitChannel(preset.ChannelSync); err != nil {
		ui.ErrorAndNotify("Preset Restore Failed", "Unable to restore presets of device %s: %v", s.DeviceId(), err)
	}

	config := configuration.CurrentConfig
	monitor := NewTelemetryMonitor(s, config.TelemetryPollingRate, config.TelemetryRollingWindowSize)

	fan, _ := s.Curve(curves.FanCurveId)
	pump, _ := s.Curve(curves.PumpCurveId)
	statistics.Register(statistics.NewTelemetryCollector(monitor))
	statistics.Register(statistics.NewCurveCollector(fan, pump))
	statistics.Register(statistics.NewPresetCollector(s))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			port := config.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on %s", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST Api
			rest := api.CreateRestService(s, prometheus.DefaultRegisterer)
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)

			g.Add(func() error {
				ui.Info("Starting REST api on %s", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping REST api...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		// === telemetry monitoring
		g.Add(func() error {
			err := monitor.Run(ctx)
			ui.Info("Telemetry monitor for device %s stopped.", s.DeviceId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error monitoring device: %v", err)
			}
			cancel()
		})
	}
	{
		if config.Control.Enabled {
			// === duty controllers
			addDutyControllers(ctx, &g, s, config.Control, cancel)
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// addDutyControllers adds a controller for every curve of the session to the run group.
// A controller that stops on its own keeps its slot in the group until the context is cancelled.
func addDutyControllers(ctx context.Context, g *run.Group, s *session.Session, config configuration.ControlConfig, cancel context.CancelFunc) {
	writer, ok := s.Adapter().(device.DutyWriter)
	if !ok {
		ui.Warning("Device %s does not support setting duty values, control is disabled", s.DeviceId())
		return
	}

	for _, id := range s.CurveIds() {
		curve, err := s.Curve(id)
		if err != nil {
			ui.Warning("Unable to create duty controller: %v", err)
			continue
		}
		c := controller.NewDutyController(
			s.DeviceId(),
			writer,
			curve,
			control_loop.NewDirectControlLoop(config.MaxChangePerSecond()),
			config.AdjustmentTickRate,
		)

		g.Add(func() error {
			err := c.Run(ctx)
			if err == nil {
				<-ctx.Done()
			}
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error controlling %s duty of device %s: %v", curve.Id(), s.DeviceId(), err)
			}
			cancel()
		})
	}
}

func initPersistence() (persistence.Persistence, error) {
	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		return nil, err
	}
	return pers, nil
}

// OpenPersistence returns the state store of the current configuration.
// Failures are reported and result in nil, the store is optional for CLI commands.
func OpenPersistence() persistence.Persistence {
	pers, err := initPersistence()
	if err != nil {
		ui.Warning("State store unavailable: %v", err)
		return nil
	}
	return pers
}

// ResolveDeviceId picks the device to operate on: the explicit id, the configured default device,
// the device used last, or the first configured device, in that order.
func ResolveDeviceId(explicit string, config *configuration.Configuration, pers persistence.Persistence) (string, error) {
	if len(explicit) > 0 {
		if _, ok := config.FindDevice(explicit); !ok {
			return "", fmt.Errorf("%w: %s", device.ErrNotFound, explicit)
		}
		return explicit, nil
	}
	if len(config.Device) > 0 {
		if _, ok := config.FindDevice(config.Device); !ok {
			return "", fmt.Errorf("%w: %s", device.ErrNotFound, config.Device)
		}
		return config.Device, nil
	}
	if pers != nil {
		if last, err := pers.LoadActiveDevice(); err == nil {
			if _, ok := config.FindDevice(last); ok {
				return last, nil
			}
			ui.Warning("Last used device %s is no longer configured", last)
		}
	}
	first, ok := config.DefaultDevice()
	if !ok {
		return "", errors.New("no devices configured")
	}
	return first.ID, nil
}

// OpenSession initializes all configured devices and creates a session for the selected one
func OpenSession(deviceId string, pers persistence.Persistence) (*session.Session, error) {
	config := &configuration.CurrentConfig
	id, err := ResolveDeviceId(deviceId, config, pers)
	if err != nil {
		return nil, err
	}

	if err := device.InitDevices(config.Devices); err != nil {
		return nil, err
	}
	adapter, err := device.GetDevice(id)
	if err != nil {
		return nil, err
	}

	if pers != nil {
		if err := pers.SaveActiveDevice(id); err != nil {
			ui.Warning("Unable to remember active device: %v", err)
		}
	}

	return session.New(adapter, session.Options{
		ProfilePath:  config.ProfilePath,
		Persistence:  pers,
		SaveOnCommit: config.SaveOnCommit.Get(),
		CurveDefaults: profile.CurveDefaults{
			Fan:  config.Curves.FanPoints(),
			Pump: config.Curves.PumpPoints(),
		},
	}), nil
}
