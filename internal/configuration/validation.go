package configuration

import (
	"errors"
	"fmt"
	"github.com/looplab/tarjan"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/util"
	"strings"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateDevices(config)
	if err != nil {
		return err
	}
	err = validateCurves(config)
	if err != nil {
		return err
	}
	err = validateControl(config)
	if err != nil {
		return err
	}

	if len(config.Device) > 0 {
		if _, ok := config.FindDevice(config.Device); !ok {
			return fmt.Errorf("no device definition with id '%s' found", config.Device)
		}
	}

	if containsCmdDevices(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return validateTelemetry(config)
}

func containsCmdDevices(config *Configuration) bool {
	for _, deviceConfig := range config.Devices {
		if deviceConfig.Cmd != nil {
			return true
		}
	}
	return false
}

func validateDevices(config *Configuration) error {
	graph := make(map[interface{}][]interface{})
	ids := map[string]bool{}

	for _, deviceConfig := range config.Devices {
		if len(deviceConfig.ID) <= 0 {
			return errors.New("device: missing id")
		}
		if ids[deviceConfig.ID] {
			return fmt.Errorf("duplicate device id detected: %s", deviceConfig.ID)
		}
		ids[deviceConfig.ID] = true

		subConfigs := 0
		if deviceConfig.Virtual != nil {
			subConfigs++
		}
		if deviceConfig.File != nil {
			subConfigs++
		}
		if deviceConfig.Cmd != nil {
			subConfigs++
		}
		if deviceConfig.HwMon != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return fmt.Errorf("device %s: only one device type can be used per device definition block", deviceConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("device %s: sub-configuration for device is missing, use one of: virtual | file | cmd | hwmon", deviceConfig.ID)
		}

		if len(deviceConfig.Catalog) <= 0 && len(deviceConfig.Extends) <= 0 && len(deviceConfig.Modes) <= 0 {
			return fmt.Errorf("device %s: no color modes defined, use one of: catalog | extends | modes", deviceConfig.ID)
		}

		if len(deviceConfig.Catalog) > 0 {
			if _, err := catalog.GetBuiltin(deviceConfig.Catalog); err != nil {
				return fmt.Errorf("device %s: %v", deviceConfig.ID, err)
			}
		}

		if len(deviceConfig.Extends) > 0 {
			if deviceConfig.Extends == deviceConfig.ID {
				return fmt.Errorf("device %s: a device cannot extend itself", deviceConfig.ID)
			}
			if _, ok := config.FindDevice(deviceConfig.Extends); !ok {
				return fmt.Errorf("device %s: no device definition with id '%s' found", deviceConfig.ID, deviceConfig.Extends)
			}
			graph[deviceConfig.ID] = []interface{}{deviceConfig.Extends}
		}

		if err := validateModes(deviceConfig); err != nil {
			return err
		}

		for name, value := range deviceConfig.Speeds {
			if len(strings.TrimSpace(name)) <= 0 {
				return fmt.Errorf("device %s: speed name must not be empty", deviceConfig.ID)
			}
			if value < 0 {
				return fmt.Errorf("device %s: speed '%s' must not be negative", deviceConfig.ID, name)
			}
		}

		if err := validateDeviceType(deviceConfig); err != nil {
			return err
		}
	}

	return validateNoLoops(graph)
}

func validateModes(deviceConfig DeviceConfig) error {
	for _, mode := range deviceConfig.Modes {
		if len(strings.TrimSpace(mode.Name)) <= 0 {
			return fmt.Errorf("device %s: mode name must not be empty", deviceConfig.ID)
		}
		if mode.MinColors < 0 {
			return fmt.Errorf("device %s: mode %s: minColors must be >= 0", deviceConfig.ID, mode.Name)
		}
		if mode.MaxColors < mode.MinColors {
			return fmt.Errorf("device %s: mode %s: maxColors must be >= minColors", deviceConfig.ID, mode.Name)
		}
	}
	return nil
}

func validateDeviceType(deviceConfig DeviceConfig) error {
	if deviceConfig.File != nil {
		if len(deviceConfig.File.Path) <= 0 {
			return fmt.Errorf("device %s: no file path provided", deviceConfig.ID)
		}
	}

	if deviceConfig.Cmd != nil {
		cmdConfig := deviceConfig.Cmd
		if cmdConfig.Write == nil {
			return fmt.Errorf("device %s: missing write configuration", deviceConfig.ID)
		}
		if len(cmdConfig.Write.Exec) <= 0 {
			return fmt.Errorf("device %s: write executable is missing", deviceConfig.ID)
		}
		if cmdConfig.Status != nil && len(cmdConfig.Status.Exec) <= 0 {
			return fmt.Errorf("device %s: status executable is missing", deviceConfig.ID)
		}
	}

	if deviceConfig.HwMon != nil {
		hwmonConfig := deviceConfig.HwMon
		if len(hwmonConfig.Platform) <= 0 {
			return fmt.Errorf("device %s: missing platform", deviceConfig.ID)
		}
		if hwmonConfig.TempIndex < 0 || hwmonConfig.FanIndex < 0 || hwmonConfig.PumpIndex < 0 {
			return fmt.Errorf("device %s: invalid index, must be >= 1", deviceConfig.ID)
		}
	}

	return nil
}

func validateNoLoops(graph map[interface{}][]interface{}) error {
	output := tarjan.Connections(graph)
	for _, items := range output {
		if len(items) > 1 {
			return fmt.Errorf("you have created a device 'extends' cycle: %v", items)
		}
	}
	return nil
}

func validateCurves(config *Configuration) error {
	if err := validateCurvePoints(curves.FanCurveId, config.Curves.Fan); err != nil {
		return err
	}
	return validateCurvePoints(curves.PumpCurveId, config.Curves.Pump)
}

func validateCurvePoints(id string, points CurvePoints) error {
	if len(points) <= 0 {
		// builtin default is used
		return nil
	}
	if len(points) < curves.MinPoints {
		return fmt.Errorf("curve %s: at least %d points are required", id, curves.MinPoints)
	}
	for temperature, duty := range points {
		if temperature < curves.MinTemperature || temperature > curves.MaxTemperature {
			return fmt.Errorf("curve %s: temperature %d is out of range [%d..%d]", id, temperature, curves.MinTemperature, curves.MaxTemperature)
		}
		if duty < curves.MinDuty || duty > curves.MaxDuty {
			return fmt.Errorf("curve %s: duty %d at %d°C is out of range [%d..%d]", id, duty, temperature, curves.MinDuty, curves.MaxDuty)
		}
	}
	return nil
}

func validateControl(config *Configuration) error {
	if config.Control.MaxDutyChangePerSecond < 0 {
		return fmt.Errorf("control: maxDutyChangePerSecond must not be negative, got %d", config.Control.MaxDutyChangePerSecond)
	}
	if config.Control.Enabled && config.Control.AdjustmentTickRate <= 0 {
		return errors.New("control: adjustmentTickRate must be positive")
	}
	return nil
}

func validateTelemetry(config *Configuration) error {
	if config.TelemetryPollingRate <= 0 {
		return fmt.Errorf("telemetryPollingRate must be positive, got %s", config.TelemetryPollingRate)
	}
	return nil
}
