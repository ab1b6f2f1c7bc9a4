package device

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/configuration"
	"strings"
)

// Tables are the mode and speed tables of a device
type Tables struct {
	Modes           map[string]catalog.ColorMode
	Speeds          map[string]int
	DefaultRingMode string
}

// ResolveTables computes the tables of the given device.
// Entries are applied in order: the device it extends (recursively), its builtin catalog, its own modes and speeds.
// Later entries override earlier ones with the same name.
func ResolveTables(config configuration.DeviceConfig, all []configuration.DeviceConfig) (Tables, error) {
	return resolveTables(config, all, map[string]bool{})
}

func resolveTables(config configuration.DeviceConfig, all []configuration.DeviceConfig, visited map[string]bool) (Tables, error) {
	if visited[config.ID] {
		return Tables{}, fmt.Errorf("device %s: 'extends' cycle detected", config.ID)
	}
	visited[config.ID] = true

	result := Tables{
		Modes:  map[string]catalog.ColorMode{},
		Speeds: map[string]int{},
	}

	if len(config.Extends) > 0 {
		parentConfig, ok := findDeviceConfig(config.Extends, all)
		if !ok {
			return Tables{}, fmt.Errorf("device %s: no device definition with id '%s' found", config.ID, config.Extends)
		}
		parent, err := resolveTables(parentConfig, all, visited)
		if err != nil {
			return Tables{}, err
		}
		result.merge(parent)
	}

	if len(config.Catalog) > 0 {
		builtin, err := catalog.GetBuiltin(config.Catalog)
		if err != nil {
			return Tables{}, fmt.Errorf("device %s: %w", config.ID, err)
		}
		result.merge(Tables{
			Modes:           builtin.ModeMap(),
			Speeds:          builtin.Speeds,
			DefaultRingMode: builtin.DefaultRingMode,
		})
	}

	own := Tables{
		Modes:           map[string]catalog.ColorMode{},
		Speeds:          config.Speeds,
		DefaultRingMode: config.DefaultRingMode,
	}
	for _, modeConfig := range config.Modes {
		mode := modeConfig.ToColorMode()
		mode.Name = strings.ToLower(strings.TrimSpace(mode.Name))
		own.Modes[mode.Name] = mode
	}
	result.merge(own)

	return result, nil
}

func (t *Tables) merge(other Tables) {
	for k, v := range other.Modes {
		t.Modes[strings.ToLower(k)] = v
	}
	for k, v := range other.Speeds {
		t.Speeds[strings.ToLower(k)] = v
	}
	if len(other.DefaultRingMode) > 0 {
		t.DefaultRingMode = strings.ToLower(other.DefaultRingMode)
	}
}

func findDeviceConfig(id string, all []configuration.DeviceConfig) (configuration.DeviceConfig, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return configuration.DeviceConfig{}, false
}
