package preset

import (
	"github.com/markusressel/kraken2go/internal/color"
)

// Preset holds the lighting state of a single channel.
//
// The order of Colors is significant: index 0 is the logo swatch when the
// channel includes the logo, the following entries are ring segments in
// clockwise order.
type Preset struct {
	Channel Channel     `json:"channel"`
	Mode    string      `json:"mode"`
	Colors  []color.RGB `json:"colors"`
	Speed   string      `json:"speed"`
}

// Copy returns a deep copy of this preset
func (p Preset) Copy() Preset {
	return Preset{
		Channel: p.Channel,
		Mode:    p.Mode,
		Colors:  color.Copy(p.Colors),
		Speed:   p.Speed,
	}
}

// WithChannel returns a deep copy of this preset, assigned to the given channel
func (p Preset) WithChannel(channel Channel) Preset {
	c := p.Copy()
	c.Channel = channel
	return c
}

// Equal compares all attributes of both presets
func (p Preset) Equal(other Preset) bool {
	return p.Channel == other.Channel &&
		p.Mode == other.Mode &&
		p.Speed == other.Speed &&
		color.Equal(p.Colors, other.Colors)
}
