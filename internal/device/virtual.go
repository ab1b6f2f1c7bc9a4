package device

import (
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	"sync"
)

// ChannelWrite is a single WriteChannel call recorded by a VirtualDevice
type ChannelWrite struct {
	Channel preset.Channel `json:"channel"`
	Mode    string         `json:"mode"`
	Colors  []color.RGB    `json:"colors"`
	Speed   string         `json:"speed"`
}

// VirtualDevice keeps everything in memory.
// It is used for testing and for trying out presets without hardware.
type VirtualDevice struct {
	baseDevice

	mu       sync.Mutex
	status   []StatusItem
	writes   []ChannelWrite
	duties   map[string]int
	writeErr error
}

func NewVirtualDevice(base baseDevice, config *configuration.VirtualDeviceConfig) *VirtualDevice {
	d := &VirtualDevice{baseDevice: base}
	if config != nil {
		for _, item := range config.Status {
			d.status = append(d.status, StatusItem{Label: item.Label, Value: item.Value})
		}
	}
	return d
}

// NewVirtualDeviceWithTables creates a virtual device without any configuration
func NewVirtualDeviceWithTables(id string, tables Tables) *VirtualDevice {
	return NewVirtualDevice(baseDevice{id: id, tables: tables}, nil)
}

func (d *VirtualDevice) GetStatus() ([]StatusItem, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]StatusItem, len(d.status))
	copy(result, d.status)
	return result, nil
}

// SetStatus replaces the telemetry reported by this device
func (d *VirtualDevice) SetStatus(status []StatusItem) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

// SetWriteError makes every following WriteChannel call fail with err, nil resets it
func (d *VirtualDevice) SetWriteError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writeErr = err
}

func (d *VirtualDevice) WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.writeErr != nil {
		return newDeviceError(d.id, "write", d.writeErr)
	}
	d.writes = append(d.writes, ChannelWrite{
		Channel: channel,
		Mode:    mode,
		Colors:  color.Copy(colors),
		Speed:   speed,
	})
	return nil
}

// Writes returns all successful WriteChannel calls in order
func (d *VirtualDevice) Writes() []ChannelWrite {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]ChannelWrite, len(d.writes))
	copy(result, d.writes)
	return result
}

func (d *VirtualDevice) WriteDuty(curveId string, duty int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.writeErr != nil {
		return newDeviceError(d.id, "duty", d.writeErr)
	}
	if d.duties == nil {
		d.duties = map[string]int{}
	}
	d.duties[curveId] = duty
	return nil
}

// Duties returns the last duty written per curve id
func (d *VirtualDevice) Duties() map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make(map[string]int, len(d.duties))
	for k, v := range d.duties {
		result[k] = v
	}
	return result
}
