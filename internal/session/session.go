package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/engine"
	"github.com/markusressel/kraken2go/internal/persistence"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/markusressel/kraken2go/internal/ui"
)

var ErrCurveNotFound = errors.New("curve not found")

// Options control where a session loads its profile from and where it saves it to
type Options struct {
	// ProfilePath is the profile file of the user, may be empty
	ProfilePath string
	// Persistence stores the last commit per device, may be nil
	Persistence   persistence.Persistence
	SaveOnCommit  bool
	CurveDefaults profile.CurveDefaults
}

// PresetEdit is a partial update of a single channel, nil fields are left untouched
type PresetEdit struct {
	Mode   *string  `json:"mode,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Speed  *string  `json:"speed,omitempty"`
	// Fill sets every color of the channel, after Colors has been applied
	Fill *string `json:"fill,omitempty"`
}

// Session owns the presets and curves of a single device.
// All mutations are serialized, so it can be shared between the API and the monitor.
type Session struct {
	mu      sync.Mutex
	options Options

	adapter device.Adapter
	engine  *engine.Engine
	curves  map[string]*curves.ControlCurve
}

// New creates a session for the given device and restores its last state
func New(adapter device.Adapter, options Options) *Session {
	caps := device.Capabilities(adapter)
	p := loadProfile(adapter.GetId(), caps, options)

	e := engine.NewEngine(caps, adapter)
	e.Load(p.Logo, p.Ring)
	// drop modes and speeds the device does not support
	e.SwitchDevice(caps, adapter)

	return &Session{
		options: options,
		adapter: adapter,
		engine:  e,
		curves: map[string]*curves.ControlCurve{
			curves.FanCurveId:  p.FanCurve(options.CurveDefaults),
			curves.PumpCurveId: p.PumpCurve(options.CurveDefaults),
		},
	}
}

// loadProfile picks the profile file if it belongs to the given device,
// then the last commit stored for the device, then the default profile.
func loadProfile(deviceId string, caps catalog.Capabilities, options Options) *profile.Profile {
	if options.ProfilePath != "" {
		p, err := profile.LoadFile(options.ProfilePath, options.CurveDefaults)
		switch {
		case err == nil && (p.Device == nil || p.DeviceId() == deviceId):
			ui.Debug("Using profile file %s for device %s", options.ProfilePath, deviceId)
			return p
		case err == nil:
			ui.Debug("Profile file %s belongs to device %s, ignoring it", options.ProfilePath, p.DeviceId())
		case !errors.Is(err, os.ErrNotExist):
			ui.Warning("Unable to load profile %s, using defaults: %v", options.ProfilePath, err)
		}
	}

	if options.Persistence != nil {
		p, err := options.Persistence.LoadProfile(deviceId, options.CurveDefaults)
		if err == nil {
			ui.Debug("Restored last commit of device %s", deviceId)
			return p
		}
		if !errors.Is(err, os.ErrNotExist) {
			ui.Warning("Unable to restore last commit of device %s: %v", deviceId, err)
		}
	}

	return profile.Default(caps, options.CurveDefaults)
}

func (s *Session) DeviceId() string {
	return s.adapter.GetId()
}

func (s *Session) Adapter() device.Adapter {
	return s.adapter
}

func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Preset returns the live preset of the given channel
func (s *Session) Preset(channel preset.Channel) preset.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Live(channel)
}

// Edit selects the given channel and applies all attributes set in edit.
// Nothing is changed if any attribute cannot be parsed.
func (s *Session) Edit(channel preset.Channel, edit PresetEdit) error {
	var edits []engine.Edit
	if edit.Mode != nil {
		e, err := engine.NewEdit(channel, engine.AttributeMode, *edit.Mode)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}
	if edit.Colors != nil {
		e, err := engine.NewEdit(channel, engine.AttributeColors, edit.Colors)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}
	if edit.Speed != nil {
		e, err := engine.NewEdit(channel, engine.AttributeSpeed, *edit.Speed)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}
	var fill *color.RGB
	if edit.Fill != nil {
		c, err := color.ParseHex(*edit.Fill)
		if err != nil {
			return err
		}
		fill = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SelectChannel(channel)
	for _, e := range edits {
		if err := s.engine.Apply(e); err != nil {
			return err
		}
	}
	if fill != nil {
		return s.engine.FillColors(*fill)
	}
	return nil
}

// SetColor replaces a single color of the given channel
func (s *Session) SetColor(channel preset.Channel, index int, c color.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SelectChannel(channel)
	return s.engine.SetColor(index, c)
}

// Commit transmits the live presets of the active channel and saves the profile if enabled
func (s *Session) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit()
}

// CommitChannel selects the given channel and commits it
func (s *Session) CommitChannel(channel preset.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SelectChannel(channel)
	return s.commit()
}

func (s *Session) commit() error {
	if err := s.engine.Commit(); err != nil {
		return err
	}
	if s.options.SaveOnCommit {
		return s.save()
	}
	return nil
}

func (s *Session) Revert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Revert()
}

// Save writes the committed presets and the curves to the profile file and the state store
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Session) save() error {
	p := s.profile()

	var errs []string
	if s.options.ProfilePath != "" {
		if err := profile.SaveFile(s.options.ProfilePath, p); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if s.options.Persistence != nil {
		if err := s.options.Persistence.SaveProfile(s.DeviceId(), p); err != nil {
			errs = append(errs, fmt.Sprintf("state store: %v", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("unable to save profile: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Profile returns the committed state of this session
func (s *Session) Profile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile()
}

func (s *Session) profile() *profile.Profile {
	deviceId := s.DeviceId()
	return &profile.Profile{
		Device: &deviceId,
		Logo:   s.engine.Committed(preset.ChannelLogo),
		Ring:   s.engine.Committed(preset.ChannelRing),
		Fan:    s.curves[curves.FanCurveId].Copy(),
		Pump:   s.curves[curves.PumpCurveId].Copy(),
	}
}

// Import applies the presets of the given profile to both hardware channels and commits them.
// If the presets are rejected the live presets and the active channel are left as they were.
func (s *Session) Import(p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.engine.SaveLive()
	if err := s.applyImport(p); err != nil {
		s.engine.RestoreLive(previous)
		return err
	}
	if s.options.SaveOnCommit {
		return s.save()
	}
	return nil
}

func (s *Session) applyImport(p *profile.Profile) error {
	for _, imported := range []preset.Preset{p.Logo.WithChannel(preset.ChannelLogo), p.Ring.WithChannel(preset.ChannelRing)} {
		edits := []engine.Edit{
			{Channel: imported.Channel, Attribute: engine.AttributeMode, Mode: imported.Mode},
			{Channel: imported.Channel, Attribute: engine.AttributeColors, Colors: imported.Colors},
			{Channel: imported.Channel, Attribute: engine.AttributeSpeed, Speed: imported.Speed},
		}
		for _, edit := range edits {
			if err := s.engine.Apply(edit); err != nil {
				return err
			}
		}
	}
	s.engine.SelectChannel(preset.ChannelSync)
	return s.engine.Commit()
}

// CurveIds returns the ids of all curves of this session
func (s *Session) CurveIds() []string {
	return []string{curves.FanCurveId, curves.PumpCurveId}
}

// Curve returns the curve with the given id
func (s *Session) Curve(id string) (*curves.ControlCurve, error) {
	c, ok := s.curves[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: '%s', use one of: %s", ErrCurveNotFound, id, strings.Join(s.CurveIds(), " | "))
	}
	return c, nil
}

// AddCurvePoint inserts a point into the given curve and saves the profile if enabled
func (s *Session) AddCurvePoint(id string, temperature int, duty int) (int, error) {
	c, err := s.Curve(id)
	if err != nil {
		return -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index, err := c.AddPoint(temperature, duty)
	if err != nil {
		return -1, err
	}
	if s.options.SaveOnCommit {
		return index, s.save()
	}
	return index, nil
}

// RemoveCurvePoint removes a point from the given curve and saves the profile if enabled
func (s *Session) RemoveCurvePoint(id string, index int) error {
	c, err := s.Curve(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := c.RemovePoint(index); err != nil {
		return err
	}
	if s.options.SaveOnCommit {
		return s.save()
	}
	return nil
}

// UpdateTelemetry moves the live markers of all curves to the given liquid temperature
func (s *Session) UpdateTelemetry(t device.Telemetry) {
	for _, c := range s.curves {
		c.UpdateLive(t.LiquidTemperature)
	}
}
