package device

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/util"
	"github.com/md14454/gosensors"
	"path/filepath"
	"strings"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

// HwMonDevice reads telemetry of a cooler through libsensors, e.g. from the nzxt-kraken2 driver.
// Lighting cannot be controlled through hwmon, so writes are not supported.
type HwMonDevice struct {
	baseDevice
	Config configuration.HwMonDeviceConfig `json:"config"`
}

func (d *HwMonDevice) GetStatus() ([]StatusItem, error) {
	gosensors.Init()
	defer gosensors.Cleanup()

	for _, chip := range gosensors.GetDetectedChips() {
		if !strings.EqualFold(computeIdentifier(chip), d.Config.Platform) && !strings.EqualFold(chip.Prefix, d.Config.Platform) {
			continue
		}

		temp, err := readFeature(chip, featureTemp, indexOrDefault(d.Config.TempIndex, 1))
		if err != nil {
			return nil, newDeviceError(d.id, "status", err)
		}
		fan, err := readFeature(chip, featureFan, indexOrDefault(d.Config.FanIndex, 1))
		if err != nil {
			return nil, newDeviceError(d.id, "status", err)
		}
		pump, err := readFeature(chip, featureFan, indexOrDefault(d.Config.PumpIndex, 2))
		if err != nil {
			return nil, newDeviceError(d.id, "status", err)
		}

		return []StatusItem{
			{Label: LabelLiquidTemperature, Value: temp},
			{Label: LabelFanSpeed, Value: fan},
			{Label: LabelPumpSpeed, Value: pump},
		}, nil
	}

	return nil, newDeviceError(d.id, "status", fmt.Errorf("%w: no hwmon chip matching platform '%s'", ErrNotFound, d.Config.Platform))
}

func (d *HwMonDevice) WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error {
	return newDeviceError(d.id, "write", ErrUnsupported)
}

func indexOrDefault(index int, fallback int) int {
	if index <= 0 {
		return fallback
	}
	return index
}

type featureKind int

const (
	featureTemp featureKind = iota
	featureFan
)

func (k featureKind) matches(feature gosensors.Feature) bool {
	switch k {
	case featureTemp:
		return feature.Type == gosensors.FeatureTypeTemp
	case featureFan:
		return feature.Type == gosensors.FeatureTypeFan
	}
	return false
}

func (k featureKind) isInput(subFeature gosensors.SubFeature) bool {
	switch k {
	case featureTemp:
		return subFeature.Type == gosensors.SubFeatureTypeTempInput
	case featureFan:
		return subFeature.Type == gosensors.SubFeatureTypeFanInput
	}
	return false
}

// readFeature returns the input value of the index-th (1-based) feature of the given kind
func readFeature(chip gosensors.Chip, kind featureKind, index int) (float64, error) {
	count := 0
	for _, feature := range chip.GetFeatures() {
		if !kind.matches(feature) {
			continue
		}
		count++
		if count != index {
			continue
		}
		for _, subFeature := range feature.GetSubFeatures() {
			if kind.isInput(subFeature) {
				return subFeature.GetValue(), nil
			}
		}
		return 0, fmt.Errorf("feature %d of chip %s has no input", index, chip.Prefix)
	}
	return 0, fmt.Errorf("%w: feature %d of chip %s", ErrNotFound, index, chip.Prefix)
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	devicePath := chip.Path
	if len(name) <= 0 {
		name = util.GetDeviceName(devicePath)
	}

	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%d", identifier, chip.Bus.Nr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%d", identifier, chip.Bus.Nr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}
