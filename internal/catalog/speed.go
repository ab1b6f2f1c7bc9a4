package catalog

import (
	"github.com/markusressel/kraken2go/internal/util"
	"sort"
	"strings"
)

const DefaultSpeedName = "normal"

// SpeedTable maps animation speed names to their device scale value
type SpeedTable map[string]int

// Contains reports whether the given speed name is known, ignoring case
func (s SpeedTable) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Value returns the scale value of the given speed name, ignoring case
func (s SpeedTable) Value(name string) (int, bool) {
	v, ok := s[strings.ToLower(name)]
	return v, ok
}

// NameOf returns the name that is mapped to the given scale value
func (s SpeedTable) NameOf(value int) (string, bool) {
	for _, name := range s.Names() {
		if s[name] == value {
			return name, true
		}
	}
	return "", false
}

// Names returns all speed names, ordered by their scale value
func (s SpeedTable) Names() []string {
	names := util.SortedKeys(s)
	sort.SliceStable(names, func(i, j int) bool {
		return s[names[i]] < s[names[j]]
	})
	return names
}

// Default returns "normal" if present, the slowest speed otherwise
func (s SpeedTable) Default() string {
	if s.Contains(DefaultSpeedName) {
		return DefaultSpeedName
	}
	names := s.Names()
	if len(names) <= 0 {
		return ""
	}
	return names[0]
}

// Normalized returns a copy with lowercase keys
func (s SpeedTable) Normalized() SpeedTable {
	result := SpeedTable{}
	for k, v := range s {
		result[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return result
}

// Capabilities bundles everything the preset engine needs to know about a device.
// It is replaced as a whole whenever the active device changes.
type Capabilities struct {
	Modes  *Catalog
	Speeds SpeedTable
}

// NewCapabilities normalizes the given tables into a Capabilities value
func NewCapabilities(modes map[string]ColorMode, speeds map[string]int, defaultRingMode string) Capabilities {
	return Capabilities{
		Modes:  FromMap(modes, defaultRingMode),
		Speeds: SpeedTable(speeds).Normalized(),
	}
}
