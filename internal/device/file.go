package device

import (
	"encoding/json"
	"errors"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/util"
	"os"
	"sync"
)

// ChannelState is the persisted state of a single hardware channel
type ChannelState struct {
	Mode       string      `json:"mode"`
	ModeValue  int         `json:"modeValue"`
	Colors     []color.RGB `json:"colors"`
	Speed      string      `json:"speed"`
	SpeedValue int         `json:"speedValue"`
}

// FileDevice writes the state of all channels as json to a file and reads
// its status from a file containing "label value" lines.
type FileDevice struct {
	baseDevice
	Config configuration.FileDeviceConfig `json:"config"`

	mu sync.Mutex
}

func (d *FileDevice) GetStatus() ([]StatusItem, error) {
	if len(d.Config.StatusPath) <= 0 {
		return nil, newDeviceError(d.id, "status", ErrUnsupported)
	}
	values, err := util.ReadLabeledValuesFromFile(d.Config.StatusPath)
	if err != nil {
		return nil, newDeviceError(d.id, "status", err)
	}
	return toStatusItems(values), nil
}

func (d *FileDevice) WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	state, err := d.ReadState()
	if err != nil {
		return newDeviceError(d.id, "write", err)
	}

	modeValue := 0
	if m, ok := d.tables.Modes[mode]; ok {
		modeValue = m.Value
	}
	state[channel] = ChannelState{
		Mode:       mode,
		ModeValue:  modeValue,
		Colors:     color.Copy(colors),
		Speed:      speed,
		SpeedValue: d.tables.Speeds[speed],
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return newDeviceError(d.id, "write", err)
	}
	return newDeviceError(d.id, "write", util.WriteFileAtomic(d.Config.Path, data))
}

// ReadState returns the channel state currently stored in the file
func (d *FileDevice) ReadState() (map[preset.Channel]ChannelState, error) {
	state := map[preset.Channel]ChannelState{}

	path, err := util.ExpandPath(d.Config.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) <= 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func toStatusItems(values []util.LabeledValue) []StatusItem {
	result := make([]StatusItem, 0, len(values))
	for _, v := range values {
		result = append(result, StatusItem{Label: v.Label, Value: v.Value})
	}
	return result
}
