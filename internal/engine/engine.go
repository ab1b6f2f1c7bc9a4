package engine

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"golang.org/x/exp/slices"
)

// MixedModesLabel is shown for the sync channel when logo and ring use different modes
const MixedModesLabel = "mixed-modes"

// Transmitter receives the final channel values on commit
type Transmitter interface {
	WriteChannel(channel preset.Channel, mode string, colors []color.RGB, speed string) error
}

// Engine keeps the logo, ring and sync presets consistent with each other.
// It is not safe for concurrent use, see session.Session for a serialized wrapper.
type Engine struct {
	caps        catalog.Capabilities
	transmitter Transmitter
	store       *preset.Store
	active      preset.Channel
}

// NewEngine creates an engine with the default presets of the given device.
// transmitter may be nil, in which case Commit only updates the committed snapshot.
func NewEngine(caps catalog.Capabilities, transmitter Transmitter) *Engine {
	caps = normalizeCapabilities(caps)
	return &Engine{
		caps:        caps,
		transmitter: transmitter,
		store:       preset.NewDefaultStore(caps),
		active:      preset.ChannelLogo,
	}
}

func normalizeCapabilities(caps catalog.Capabilities) catalog.Capabilities {
	if caps.Modes == nil {
		caps.Modes = catalog.NewCatalog(nil, "")
	}
	if caps.Speeds == nil {
		caps.Speeds = catalog.SpeedTable{}
	}
	return caps
}

func (e *Engine) Capabilities() catalog.Capabilities {
	return e.caps
}

// Load replaces live and committed state with the given presets.
// Sync is reconstructed from ring, the active channel is kept.
func (e *Engine) Load(logo preset.Preset, ring preset.Preset) {
	e.store.Reset(logo, ring)
	e.reconcile(Edit{Channel: preset.ChannelRing, Attribute: AttributeMode})
}

// SwitchDevice replaces the device capabilities and transmitter.
// Live modes and speeds the new device does not support fall back to its defaults.
func (e *Engine) SwitchDevice(caps catalog.Capabilities, transmitter Transmitter) {
	e.caps = normalizeCapabilities(caps)
	e.transmitter = transmitter

	for _, channel := range preset.Channels {
		p := e.store.Live(channel)
		changed := false
		if !e.caps.Modes.Contains(p.Mode) {
			if first, ok := e.caps.Modes.First(); ok {
				ui.Warning("Mode '%s' of channel %s is not supported by the device, falling back to '%s'", p.Mode, channel, first.Name)
				p.Mode = first.Name
				changed = true
			}
		}
		if len(e.caps.Speeds) > 0 && !e.caps.Speeds.Contains(p.Speed) {
			fallback := e.caps.Speeds.Default()
			ui.Warning("Speed '%s' of channel %s is not supported by the device, falling back to '%s'", p.Speed, channel, fallback)
			p.Speed = fallback
			changed = true
		}
		if changed {
			e.store.SetLive(channel, p)
		}
	}
	e.reconcile(Edit{Channel: preset.ChannelRing, Attribute: AttributeMode})
}

// SelectChannel switches the channel that receives edits
func (e *Engine) SelectChannel(channel preset.Channel) {
	e.active = channel
}

func (e *Engine) ActiveChannel() preset.Channel {
	return e.active
}

// Live returns a copy of the live preset of the given channel
func (e *Engine) Live(channel preset.Channel) preset.Preset {
	return e.store.Live(channel)
}

// Committed returns a copy of the committed preset of the given channel
func (e *Engine) Committed(channel preset.Channel) preset.Preset {
	return e.store.Committed(channel)
}

// ApplyEdit writes value into the given attribute of the active channel
func (e *Engine) ApplyEdit(attribute Attribute, value interface{}) error {
	edit, err := NewEdit(e.active, attribute, value)
	if err != nil {
		return err
	}
	return e.Apply(edit)
}

func (e *Engine) SetMode(mode string) error {
	return e.ApplyEdit(AttributeMode, mode)
}

func (e *Engine) SetSpeed(speed string) error {
	return e.ApplyEdit(AttributeSpeed, speed)
}

func (e *Engine) SetColors(colors []color.RGB) error {
	return e.ApplyEdit(AttributeColors, colors)
}

// SetColor replaces a single color of the active channel, growing the sequence if necessary.
// The sequence never grows beyond the largest color count of any device mode.
func (e *Engine) SetColor(index int, c color.RGB) error {
	colors := e.store.Live(e.active).Colors
	limit := max(len(colors), e.caps.Modes.MaxColors())
	if index < 0 || index >= limit {
		return fmt.Errorf("invalid color index: %d, use 0 to %d", index, limit-1)
	}
	for len(colors) <= index {
		colors = append(colors, color.Black)
	}
	colors[index] = c
	return e.SetColors(colors)
}

// FillColors sets every color of the active channel to c
func (e *Engine) FillColors(c color.RGB) error {
	colors := e.store.Live(e.active).Colors
	for i := range colors {
		colors[i] = c
	}
	return e.SetColors(colors)
}

// Apply writes a single edit into the live preset of the channel it is tagged with
func (e *Engine) Apply(edit Edit) error {
	if !slices.Contains(preset.Channels, edit.Channel) {
		return fmt.Errorf("unknown channel '%s', use one of: logo | ring | sync", edit.Channel)
	}
	if edit.Attribute == AttributeMode {
		if mode, err := e.caps.Modes.Lookup(edit.Mode); err == nil {
			edit.Mode = mode.Name
		}
	}

	e.store.SetLive(edit.Channel, edit.apply(e.store.Live(edit.Channel)))
	e.reconcile(edit)
	return nil
}

// reconcile restores cross channel consistency after an edit:
//   - mode and speed edits on sync are mirrored into logo and ring
//   - colors are per channel and never mirrored
//   - sync follows the mode of logo and ring whenever they agree
func (e *Engine) reconcile(edit Edit) {
	if edit.Channel == preset.ChannelSync && edit.Attribute != AttributeColors {
		for _, target := range edit.Channel.Targets() {
			e.store.SetLive(target, edit.apply(e.store.Live(target)))
		}
	}

	logo := e.store.Live(preset.ChannelLogo)
	ring := e.store.Live(preset.ChannelRing)
	if logo.Mode == ring.Mode {
		sync := e.store.Live(preset.ChannelSync)
		if sync.Mode != logo.Mode {
			sync.Mode = logo.Mode
			e.store.SetLive(preset.ChannelSync, sync)
		}
	}
}

// MirroredModeLabel returns the mode shared by logo and ring, or MixedModesLabel
func (e *Engine) MirroredModeLabel() string {
	logo := e.store.Live(preset.ChannelLogo)
	ring := e.store.Live(preset.ChannelRing)
	if logo.Mode == ring.Mode {
		return logo.Mode
	}
	return MixedModesLabel
}

// ValidColors returns the live colors of the given channel that the current mode
// will actually use, i.e. truncated to the maximum color count of the mode.
func (e *Engine) ValidColors(channel preset.Channel) []color.RGB {
	p := e.store.Live(channel)
	mode, err := e.caps.Modes.Lookup(p.Mode)
	if err != nil || len(p.Colors) <= mode.MaxColors {
		return p.Colors
	}
	return p.Colors[:mode.MaxColors]
}

// IsDirty reports whether the live colors of the active channel differ from the committed ones.
// Mode and speed do not participate.
func (e *Engine) IsDirty() bool {
	return e.isDirty(e.active)
}

// DirtyChannels returns all channels with uncommitted color changes
func (e *Engine) DirtyChannels() []preset.Channel {
	var result []preset.Channel
	for _, channel := range preset.Channels {
		if e.isDirty(channel) {
			result = append(result, channel)
		}
	}
	return result
}

func (e *Engine) isDirty(channel preset.Channel) bool {
	return !color.Equal(e.store.Live(channel).Colors, e.store.Committed(channel).Colors)
}

// LiveState is a copy of the live presets and the active channel
type LiveState struct {
	active  preset.Channel
	presets map[preset.Channel]preset.Preset
}

// SaveLive captures the live presets and the active channel, see RestoreLive
func (e *Engine) SaveLive() LiveState {
	state := LiveState{active: e.active, presets: map[preset.Channel]preset.Preset{}}
	for _, channel := range preset.Channels {
		state.presets[channel] = e.store.Live(channel)
	}
	return state
}

// RestoreLive resets the live presets and the active channel to a previously saved state.
// Committed presets are not touched.
func (e *Engine) RestoreLive(state LiveState) {
	for channel, p := range state.presets {
		e.store.SetLive(channel, p)
	}
	e.active = state.active
}

// Revert restores the live colors of every channel from the committed snapshot
func (e *Engine) Revert() {
	for _, channel := range preset.Channels {
		e.store.SetLiveColors(channel, e.store.Committed(channel).Colors)
	}
}

// commitChannels returns the channels promoted by a commit of the active channel
func (e *Engine) commitChannels() []preset.Channel {
	if e.active == preset.ChannelSync {
		return preset.Channels
	}
	return []preset.Channel{e.active}
}

// Validate checks whether the live preset of the given channel could be committed
func (e *Engine) Validate(channel preset.Channel) error {
	_, err := e.resolve(channel)
	return err
}

// resolve validates the live preset of a channel and returns it with a canonical mode name
func (e *Engine) resolve(channel preset.Channel) (preset.Preset, error) {
	p := e.store.Live(channel)

	mode, err := e.caps.Modes.Lookup(p.Mode)
	if err != nil {
		return p, newInvalidPresetError(channel, "mode '%s' is not supported by the device", p.Mode)
	}
	p.Mode = mode.Name

	if len(e.caps.Speeds) > 0 && !e.caps.Speeds.Contains(p.Speed) {
		return p, newInvalidPresetError(channel, "speed '%s' is not supported by the device, use one of: %v", p.Speed, e.caps.Speeds.Names())
	}

	switch {
	case channel == preset.ChannelSync:
		// sync has no hardware target, its colors are never transmitted
	case channel == preset.ChannelLogo && mode.RingOnly:
		// the logo color is ignored by ring only modes
	case !mode.AcceptsColorCount(len(p.Colors)):
		return p, newInvalidPresetError(channel, "mode '%s' requires between %d and %d colors, got %d", mode.Name, mode.MinColors, mode.MaxColors, len(p.Colors))
	}

	return p, nil
}

// Commit validates the live presets of the active channel (logo, ring and sync when sync is active),
// transmits them to the device and makes them the new revert baseline.
// Nothing is transmitted or promoted if any of the presets is invalid.
func (e *Engine) Commit() error {
	channels := e.commitChannels()

	resolved := map[preset.Channel]preset.Preset{}
	for _, channel := range channels {
		p, err := e.resolve(channel)
		if err != nil {
			return err
		}
		resolved[channel] = p
	}

	if e.transmitter != nil {
		for _, channel := range channels {
			if !channel.IsHardware() {
				continue
			}
			if err := e.transmit(channel, resolved[channel]); err != nil {
				return err
			}
		}
	}

	for _, channel := range channels {
		e.store.Promote(channel)
	}
	return nil
}

func (e *Engine) transmit(channel preset.Channel, p preset.Preset) error {
	colors := p.Colors
	if channel == preset.ChannelLogo {
		if mode, _ := e.caps.Modes.Lookup(p.Mode); mode.RingOnly {
			colors = nil
		}
	}
	ui.Debug("Writing channel %s: mode=%s speed=%s colors=%d", channel, p.Mode, p.Speed, len(colors))
	if err := e.transmitter.WriteChannel(channel, p.Mode, colors, p.Speed); err != nil {
		return fmt.Errorf("unable to write channel %s: %w", channel, err)
	}
	return nil
}
