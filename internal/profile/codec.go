package profile

import (
	"encoding/json"
	"fmt"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"gopkg.in/yaml.v3"
	"strings"
)

type Format string

const (
	FormatJson Format = "json"
	FormatYaml Format = "yaml"
)

// ParseFormat parses a sharing export format, defaulting to json
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatJson:
		return FormatJson, nil
	case FormatYaml, "yml":
		return FormatYaml, nil
	default:
		return "", fmt.Errorf("unknown format '%s', use one of: json | yaml", value)
	}
}

type presetRecord struct {
	Channel string   `json:"channel,omitempty" yaml:"channel,omitempty"`
	Mode    string   `json:"mode" yaml:"mode"`
	Colors  []string `json:"colors" yaml:"colors"`
	Speed   string   `json:"speed" yaml:"speed"`
}

type presetsRecord struct {
	Logo *presetRecord `json:"logo" yaml:"logo"`
	Ring *presetRecord `json:"ring" yaml:"ring"`
}

// document is the full profile as persisted locally
type document struct {
	Device  *string       `json:"device"`
	Preset  presetsRecord `json:"preset"`
	FanCtl  [][]float64   `json:"fan_ctl,omitempty"`
	PumpCtl [][]float64   `json:"pump_ctl,omitempty"`
}

// rawDocument is the full profile as read, curves are decoded separately
type rawDocument struct {
	Device  *string         `json:"device"`
	Preset  presetsRecord   `json:"preset"`
	FanCtl  json.RawMessage `json:"fan_ctl"`
	PumpCtl json.RawMessage `json:"pump_ctl"`
}

// sharingDocument is the one way export of the lighting presets
type sharingDocument struct {
	Logo *presetRecord `json:"logo" yaml:"logo"`
	Ring *presetRecord `json:"ring" yaml:"ring"`
}

func newPresetRecord(p preset.Preset, withChannel bool) *presetRecord {
	r := &presetRecord{
		Mode:   p.Mode,
		Colors: make([]string, 0, len(p.Colors)),
		Speed:  p.Speed,
	}
	if withChannel {
		r.Channel = string(p.Channel)
	}
	for _, c := range p.Colors {
		r.Colors = append(r.Colors, c.String())
	}
	return r
}

func (r *presetRecord) toPreset(channel preset.Channel) (preset.Preset, error) {
	if r == nil {
		return preset.Preset{}, &MalformedProfileError{Reason: fmt.Sprintf("missing preset for channel %s", channel)}
	}
	colors, err := color.ParseHexList(r.Colors)
	if err != nil {
		return preset.Preset{}, &MalformedProfileError{Reason: fmt.Sprintf("channel %s", channel), Err: err}
	}
	return preset.Preset{
		Channel: channel,
		Mode:    strings.ToLower(r.Mode),
		Colors:  colors,
		Speed:   strings.ToLower(r.Speed),
	}, nil
}

func toFloatPairs(c *curves.ControlCurve) [][]float64 {
	if c == nil {
		return nil
	}
	var result [][]float64
	for _, pair := range c.ToOrderedPairs() {
		result = append(result, []float64{float64(pair[0]), float64(pair[1])})
	}
	return result
}

// Decode parses a full profile document.
// Unknown fields are ignored, curves with less than two usable points are replaced by the given defaults.
// Unusable curve points are dropped. Any structural problem of the presets results in a
// MalformedProfileError and no profile.
func Decode(data []byte, defaults CurveDefaults) (*Profile, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedProfileError{Reason: "invalid json", Err: err}
	}

	logo, err := doc.Preset.Logo.toPreset(preset.ChannelLogo)
	if err != nil {
		return nil, err
	}
	ring, err := doc.Preset.Ring.toPreset(preset.ChannelRing)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Device: doc.Device,
		Logo:   logo,
		Ring:   ring,
	}
	if isPresent(doc.FanCtl) {
		p.Fan = decodeCurve(curves.FanCurveId, doc.FanCtl, defaults)
	}
	if isPresent(doc.PumpCtl) {
		p.Pump = decodeCurve(curves.PumpCurveId, doc.PumpCtl, defaults)
	}
	return p, nil
}

func isPresent(raw json.RawMessage) bool {
	value := strings.TrimSpace(string(raw))
	return len(value) > 0 && value != "null"
}

// numericPairs returns all entries of raw which are lists of numbers.
// Anything else is dropped, a value which is not a list results in no entries at all.
func numericPairs(id string, raw json.RawMessage) [][]float64 {
	var entries []interface{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		ui.Warning("Curve %s is not a list of points: %v", id, err)
		return nil
	}

	result := make([][]float64, 0, len(entries))
	for _, entry := range entries {
		values, ok := entry.([]interface{})
		pair := make([]float64, 0, len(values))
		for _, value := range values {
			number, isNumber := value.(float64)
			if !isNumber {
				ok = false
				break
			}
			pair = append(pair, number)
		}
		if !ok {
			ui.Debug("Curve %s: ignoring malformed point %v", id, entry)
			continue
		}
		result = append(result, pair)
	}
	return result
}

func decodeCurve(id string, raw json.RawMessage, defaults CurveDefaults) *curves.ControlCurve {
	curve, fellBack := curves.FromOrderedPairs(id, numericPairs(id, raw), defaults.Points(id))
	if fellBack {
		ui.Warning("Profile contains less than %d usable points for the %s curve, using the default curve", curves.MinPoints, id)
	}
	return curve
}

// Encode creates the full profile document
func Encode(p *Profile) ([]byte, error) {
	doc := document{
		Device: p.Device,
		Preset: presetsRecord{
			Logo: newPresetRecord(p.Logo.WithChannel(preset.ChannelLogo), true),
			Ring: newPresetRecord(p.Ring.WithChannel(preset.ChannelRing), true),
		},
		FanCtl:  toFloatPairs(p.Fan),
		PumpCtl: toFloatPairs(p.Pump),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeSharing creates the sharing export of the lighting presets.
// Logo colors are always exported as an empty list.
func EncodeSharing(p *Profile, format Format) ([]byte, error) {
	logo := newPresetRecord(p.Logo, false)
	logo.Colors = []string{}
	doc := sharingDocument{
		Logo: logo,
		Ring: newPresetRecord(p.Ring, false),
	}

	switch format {
	case FormatYaml:
		return yaml.Marshal(doc)
	case FormatJson, "":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format '%s'", format)
	}
}

// ImportSharing applies a sharing export (json or yaml) on top of base.
// The logo colors of base are kept when the export carries none.
// Device and curves of base are kept as well.
func ImportSharing(data []byte, base *Profile) (*Profile, error) {
	var doc sharingDocument
	// yaml is a superset of json, so this handles both formats
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedProfileError{Reason: "invalid sharing export", Err: err}
	}

	logo, err := doc.Logo.toPreset(preset.ChannelLogo)
	if err != nil {
		return nil, err
	}
	ring, err := doc.Ring.toPreset(preset.ChannelRing)
	if err != nil {
		return nil, err
	}
	if len(logo.Mode) <= 0 || len(ring.Mode) <= 0 {
		return nil, &MalformedProfileError{Reason: "sharing export is missing a mode"}
	}
	if len(logo.Colors) <= 0 {
		logo.Colors = color.Copy(base.Logo.Colors)
	}

	return &Profile{
		Device: base.Device,
		Logo:   logo,
		Ring:   ring,
		Fan:    base.Fan,
		Pump:   base.Pump,
	}, nil
}
