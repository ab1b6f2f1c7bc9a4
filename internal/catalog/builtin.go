package catalog

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/util"
)

const (
	BuiltinKrakenX     = "kraken-x"
	BuiltinSmartDevice = "smart-device"
)

// Builtin describes the capability tables of a known device family
type Builtin struct {
	Modes           []ColorMode
	Speeds          map[string]int
	DefaultRingMode string
}

var animationSpeeds = map[string]int{
	"slowest": 0,
	"slower":  1,
	"normal":  2,
	"faster":  3,
	"fastest": 4,
}

// Kraken X42/X52/X62/X72: a single logo led and a ring of 8 leds
var krakenX = Builtin{
	DefaultRingMode: "super-fixed",
	Speeds:          animationSpeeds,
	Modes: []ColorMode{
		{Name: "off", Value: 0x00, MinColors: 0, MaxColors: 0},
		{Name: "fixed", Value: 0x00, MinColors: 1, MaxColors: 1},
		// logo + 8 independent ring leds
		{Name: "super-fixed", Value: 0x00, MinColors: 1, MaxColors: 9},
		{Name: "fading", Value: 0x01, MinColors: 2, MaxColors: 8},
		{Name: "spectrum-wave", Value: 0x02, MinColors: 0, MaxColors: 0},
		{Name: "backwards-spectrum-wave", Value: 0x02, MinColors: 0, MaxColors: 0},
		{Name: "marquee-3", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "marquee-4", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "marquee-5", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "marquee-6", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "covering-marquee", Value: 0x04, MinColors: 1, MaxColors: 8, RingOnly: true},
		{Name: "backwards-covering-marquee", Value: 0x04, MinColors: 1, MaxColors: 8, RingOnly: true},
		{Name: "alternating", Value: 0x05, TwoColorVariant: true, MinColors: 2, MaxColors: 2, RingOnly: true},
		{Name: "moving-alternating", Value: 0x05, TwoColorVariant: true, MinColors: 2, MaxColors: 2, RingOnly: true},
		{Name: "breathing", Value: 0x06, MinColors: 1, MaxColors: 8},
		{Name: "super-breathing", Value: 0x06, MinColors: 1, MaxColors: 9},
		{Name: "pulse", Value: 0x07, MinColors: 1, MaxColors: 8},
		{Name: "tai-chi", Value: 0x08, TwoColorVariant: true, MinColors: 2, MaxColors: 2, RingOnly: true},
		{Name: "water-cooler", Value: 0x09, MinColors: 0, MaxColors: 0, RingOnly: true},
		{Name: "loading", Value: 0x0a, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "wings", Value: 0x0c, MinColors: 1, MaxColors: 1, RingOnly: true},
		{Name: "super-wave", Value: 0x0d, MinColors: 1, MaxColors: 8, RingOnly: true},
		{Name: "backwards-super-wave", Value: 0x0d, MinColors: 1, MaxColors: 8, RingOnly: true},
	},
}

// Smart Device / HUE+: up to 40 leds on a single strip, no logo
var smartDevice = Builtin{
	DefaultRingMode: "super-fixed",
	Speeds:          animationSpeeds,
	Modes: []ColorMode{
		{Name: "off", Value: 0x00, MinColors: 0, MaxColors: 0},
		{Name: "fixed", Value: 0x00, MinColors: 1, MaxColors: 1},
		{Name: "super-fixed", Value: 0x00, MinColors: 1, MaxColors: 40},
		{Name: "fading", Value: 0x01, MinColors: 2, MaxColors: 8},
		{Name: "spectrum-wave", Value: 0x02, MinColors: 0, MaxColors: 0},
		{Name: "backwards-spectrum-wave", Value: 0x02, MinColors: 0, MaxColors: 0},
		{Name: "marquee-3", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1},
		{Name: "marquee-6", Value: 0x03, FourColorVariant: true, MinColors: 1, MaxColors: 1},
		{Name: "covering-marquee", Value: 0x04, MinColors: 1, MaxColors: 8},
		{Name: "alternating", Value: 0x05, TwoColorVariant: true, MinColors: 2, MaxColors: 2},
		{Name: "moving-alternating", Value: 0x05, TwoColorVariant: true, MinColors: 2, MaxColors: 2},
		{Name: "pulse", Value: 0x06, MinColors: 1, MaxColors: 8},
		{Name: "breathing", Value: 0x07, MinColors: 1, MaxColors: 8},
		{Name: "super-breathing", Value: 0x07, MinColors: 1, MaxColors: 40},
		{Name: "candle", Value: 0x09, MinColors: 1, MaxColors: 1},
		{Name: "wings", Value: 0x0c, MinColors: 1, MaxColors: 1},
		{Name: "super-wave", Value: 0x0d, MinColors: 1, MaxColors: 40},
	},
}

var builtins = map[string]Builtin{
	BuiltinKrakenX:     krakenX,
	BuiltinSmartDevice: smartDevice,
}

// GetBuiltin returns a copy of the tables of the named device family
func GetBuiltin(name string) (Builtin, error) {
	b, ok := builtins[normalize(name)]
	if !ok {
		return Builtin{}, fmt.Errorf("unknown device catalog '%s', use one of: %v", name, BuiltinNames())
	}
	modes := make([]ColorMode, len(b.Modes))
	copy(modes, b.Modes)
	speeds := make(map[string]int, len(b.Speeds))
	for k, v := range b.Speeds {
		speeds[k] = v
	}
	return Builtin{Modes: modes, Speeds: speeds, DefaultRingMode: b.DefaultRingMode}, nil
}

func BuiltinNames() []string {
	return util.SortedKeys(builtins)
}

// ModeMap returns the modes of this builtin keyed by name
func (b Builtin) ModeMap() map[string]ColorMode {
	result := make(map[string]ColorMode, len(b.Modes))
	for _, m := range b.Modes {
		result[m.Name] = m
	}
	return result
}

// Capabilities returns the builtin tables as an engine capability value
func (b Builtin) Capabilities() Capabilities {
	return Capabilities{
		Modes:  NewCatalog(b.Modes, b.DefaultRingMode),
		Speeds: SpeedTable(b.Speeds).Normalized(),
	}
}
