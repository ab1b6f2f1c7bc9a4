package configuration

import (
	"github.com/markusressel/kraken2go/internal/catalog"
)

type DeviceConfig struct {
	ID string `json:"id"`
	// Catalog is the name of a builtin mode table, see catalog.BuiltinNames
	Catalog string `json:"catalog"`
	// Extends is the id of another device whose modes and speeds are inherited
	Extends string `json:"extends"`
	// DefaultRingMode overrides the mode the ring starts with
	DefaultRingMode string `json:"defaultRingMode"`
	// Modes adds or overrides color modes
	Modes []ColorModeConfig `json:"modes"`
	// Speeds adds or overrides speed names
	Speeds map[string]int `json:"speeds"`

	Virtual *VirtualDeviceConfig `json:"virtual,omitempty"`
	File    *FileDeviceConfig    `json:"file,omitempty"`
	Cmd     *CmdDeviceConfig     `json:"cmd,omitempty"`
	HwMon   *HwMonDeviceConfig   `json:"hwmon,omitempty"`
}

type ColorModeConfig struct {
	Name             string `json:"name"`
	Value            int    `json:"value"`
	TwoColorVariant  bool   `json:"twoColorVariant"`
	FourColorVariant bool   `json:"fourColorVariant"`
	MinColors        int    `json:"minColors"`
	MaxColors        int    `json:"maxColors"`
	RingOnly         bool   `json:"ringOnly"`
}

func (c ColorModeConfig) ToColorMode() catalog.ColorMode {
	return catalog.ColorMode{
		Name:             c.Name,
		Value:            c.Value,
		TwoColorVariant:  c.TwoColorVariant,
		FourColorVariant: c.FourColorVariant,
		MinColors:        c.MinColors,
		MaxColors:        c.MaxColors,
		RingOnly:         c.RingOnly,
	}
}

type StatusItemConfig struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type VirtualDeviceConfig struct {
	Status []StatusItemConfig `json:"status"`
}

type FileDeviceConfig struct {
	// Path is the file the channel state is written to
	Path string `json:"path"`
	// StatusPath is a file containing "label value" lines
	StatusPath string `json:"statusPath"`
}

type ExecConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type CmdDeviceConfig struct {
	// Write is called with the additional arguments: channel mode speed colors...
	Write *ExecConfig `json:"write"`
	// Status must print "label value" lines
	Status *ExecConfig `json:"status"`
}

type HwMonDeviceConfig struct {
	// Platform is matched against the libsensors chip identifier, e.g. "kraken2-hid"
	Platform string `json:"platform"`
	// TempIndex, FanIndex and PumpIndex are the 1-based feature indices, e.g. temp1, fan1, fan2
	TempIndex int `json:"tempIndex"`
	FanIndex  int `json:"fanIndex"`
	PumpIndex int `json:"pumpIndex"`
}
