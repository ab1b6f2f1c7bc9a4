package device

import (
	"errors"
	"fmt"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	LabelLiquidTemperature = "Liquid temperature"
	LabelFanSpeed          = "Fan speed"
	LabelPumpSpeed         = "Pump speed"
)

var (
	ErrUnsupported = errors.New("operation not supported by device")
	ErrNotFound    = errors.New("device not found")

	DeviceMap = cmap.New[Adapter]()
)

// Adapter is the contract between kraken2go and a physical (or virtual) cooler
type Adapter interface {
	GetId() string

	// GetColorModes returns all lighting modes supported by the device, keyed by name
	GetColorModes() map[string]catalog.ColorMode
	// GetSpeedNames returns all animation speeds supported by the device, keyed by name
	GetSpeedNames() map[string]int
	// GetDefaultRingMode returns the mode the ring starts with
	GetDefaultRingMode() string

	// GetStatus returns the current telemetry of the device.
	// Liquid temperature, fan speed and pump speed are always the first three items.
	GetStatus() ([]StatusItem, error)

	// WriteChannel applies the given lighting settings to a hardware channel
	WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error
}

// DutyWriter is implemented by adapters that can set the fan or pump duty
type DutyWriter interface {
	// WriteDuty sets the duty in percent of the actuator with the given curve id (fan or pump)
	WriteDuty(curveId string, duty int) error
}

// StatusItem is a single telemetry value
type StatusItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DeviceError wraps any failure reported by a device
type DeviceError struct {
	DeviceId string
	Op       string
	Err      error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %s: %s failed: %v", e.DeviceId, e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

func newDeviceError(deviceId string, op string, err error) error {
	if err == nil {
		return nil
	}
	return &DeviceError{DeviceId: deviceId, Op: op, Err: err}
}

// NewDevice creates the adapter for the given device configuration.
// all is used to resolve the 'extends' chain of the device.
func NewDevice(config configuration.DeviceConfig, all []configuration.DeviceConfig) (Adapter, error) {
	tables, err := ResolveTables(config, all)
	if err != nil {
		return nil, err
	}
	base := baseDevice{id: config.ID, tables: tables}

	if config.Virtual != nil {
		return NewVirtualDevice(base, config.Virtual), nil
	}

	if config.File != nil {
		return &FileDevice{
			baseDevice: base,
			Config:     *config.File,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdDevice{
			baseDevice: base,
			Config:     *config.Cmd,
		}, nil
	}

	if config.HwMon != nil {
		return &HwMonDevice{
			baseDevice: base,
			Config:     *config.HwMon,
		}, nil
	}

	return nil, fmt.Errorf("no matching device type for device: %s", config.ID)
}

// InitDevices creates and registers an adapter for every configured device
func InitDevices(configs []configuration.DeviceConfig) error {
	for _, config := range configs {
		adapter, err := NewDevice(config, configs)
		if err != nil {
			return err
		}
		DeviceMap.Set(adapter.GetId(), adapter)
	}
	return nil
}

// GetDevice returns the registered device with the given id
func GetDevice(id string) (Adapter, error) {
	adapter, ok := DeviceMap.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return adapter, nil
}

// Capabilities builds the engine capability value from the tables reported by the adapter
func Capabilities(adapter Adapter) catalog.Capabilities {
	return catalog.NewCapabilities(adapter.GetColorModes(), adapter.GetSpeedNames(), adapter.GetDefaultRingMode())
}

type baseDevice struct {
	id     string
	tables Tables
}

func (d *baseDevice) GetId() string {
	return d.id
}

func (d *baseDevice) GetColorModes() map[string]catalog.ColorMode {
	result := make(map[string]catalog.ColorMode, len(d.tables.Modes))
	for k, v := range d.tables.Modes {
		result[k] = v
	}
	return result
}

func (d *baseDevice) GetSpeedNames() map[string]int {
	result := make(map[string]int, len(d.tables.Speeds))
	for k, v := range d.tables.Speeds {
		result[k] = v
	}
	return result
}

func (d *baseDevice) GetDefaultRingMode() string {
	return d.tables.DefaultRingMode
}
