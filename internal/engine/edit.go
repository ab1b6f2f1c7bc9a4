package engine

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
	"strings"
)

// Attribute is an editable attribute of a preset
type Attribute string

const (
	AttributeMode   Attribute = "mode"
	AttributeColors Attribute = "colors"
	AttributeSpeed  Attribute = "speed"
)

// Edit is a single change to the live preset of a channel.
// Only the field matching Attribute is used.
type Edit struct {
	Channel   preset.Channel
	Attribute Attribute
	Mode      string
	Colors    []color.RGB
	Speed     string
}

// NewEdit creates an edit from an untyped value as received from a frontend.
// Colors may be given as []color.RGB or as a list of hex strings.
func NewEdit(channel preset.Channel, attribute Attribute, value interface{}) (Edit, error) {
	edit := Edit{Channel: channel, Attribute: attribute}
	switch attribute {
	case AttributeMode, AttributeSpeed:
		s, ok := value.(string)
		if !ok {
			return Edit{}, fmt.Errorf("%s must be a string, got %T", attribute, value)
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if attribute == AttributeMode {
			edit.Mode = s
		} else {
			edit.Speed = s
		}
	case AttributeColors:
		switch v := value.(type) {
		case []color.RGB:
			edit.Colors = color.Copy(v)
		case []string:
			colors, err := color.ParseHexList(v)
			if err != nil {
				return Edit{}, err
			}
			edit.Colors = colors
		default:
			return Edit{}, fmt.Errorf("colors must be a list of colors, got %T", value)
		}
	default:
		return Edit{}, fmt.Errorf("unknown attribute '%s', use one of: mode | colors | speed", attribute)
	}
	return edit, nil
}

// apply writes the edited attribute into the given preset
func (e Edit) apply(p preset.Preset) preset.Preset {
	switch e.Attribute {
	case AttributeMode:
		p.Mode = e.Mode
	case AttributeColors:
		p.Colors = color.Copy(e.Colors)
	case AttributeSpeed:
		p.Speed = e.Speed
	}
	return p
}
