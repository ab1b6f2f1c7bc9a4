package preset

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
)

const (
	DefaultLogoMode  = "fixed"
	DefaultLogoSpeed = "slower"
	DefaultRingMode  = "super-fixed"
	DefaultRingSpeed = catalog.DefaultSpeedName
)

var DefaultRingColors = []color.RGB{
	color.MustParseHex("ffffff"),
	color.MustParseHex("ff0000"),
	color.MustParseHex("ff5500"),
	color.MustParseHex("ffff00"),
	color.MustParseHex("00ff00"),
	color.MustParseHex("0080ff"),
	color.MustParseHex("0000ff"),
	color.MustParseHex("ff007f"),
	color.MustParseHex("ff00ff"),
}

// Store holds the live (edited) and the committed preset of every channel
type Store struct {
	live      map[Channel]Preset
	committed map[Channel]Preset
}

// NewStore creates a store where live and committed values are the given presets.
// The sync channel is derived from the ring preset.
func NewStore(logo Preset, ring Preset) *Store {
	s := &Store{}
	s.Reset(logo, ring)
	return s
}

// NewDefaultStore creates a store containing the default presets for the given device capabilities
func NewDefaultStore(caps catalog.Capabilities) *Store {
	logo, ring := DefaultPresets(caps)
	return NewStore(logo, ring)
}

// DefaultPresets returns the session start presets: a single white logo and a nine color ring gradient
func DefaultPresets(caps catalog.Capabilities) (logo Preset, ring Preset) {
	logoMode := DefaultLogoMode
	ringMode := DefaultRingMode
	if caps.Modes != nil {
		if !caps.Modes.Contains(logoMode) {
			if first, ok := caps.Modes.First(); ok {
				logoMode = first.Name
			}
		}
		if len(caps.Modes.DefaultRingMode()) > 0 {
			ringMode = caps.Modes.DefaultRingMode()
		}
	}

	logoSpeed := DefaultLogoSpeed
	ringSpeed := DefaultRingSpeed
	if caps.Speeds != nil {
		if !caps.Speeds.Contains(logoSpeed) {
			logoSpeed = caps.Speeds.Default()
		}
		if !caps.Speeds.Contains(ringSpeed) {
			ringSpeed = caps.Speeds.Default()
		}
	}

	logo = Preset{
		Channel: ChannelLogo,
		Mode:    logoMode,
		Colors:  []color.RGB{color.White},
		Speed:   logoSpeed,
	}
	ring = Preset{
		Channel: ChannelRing,
		Mode:    ringMode,
		Colors:  color.Copy(DefaultRingColors),
		Speed:   ringSpeed,
	}
	return logo, ring
}

// Reset replaces live and committed values of all channels.
// Sync is reconstructed as a copy of ring.
func (s *Store) Reset(logo Preset, ring Preset) {
	logo = logo.WithChannel(ChannelLogo)
	ring = ring.WithChannel(ChannelRing)
	sync := ring.WithChannel(ChannelSync)

	s.live = map[Channel]Preset{
		ChannelLogo: logo,
		ChannelRing: ring,
		ChannelSync: sync,
	}
	s.committed = map[Channel]Preset{
		ChannelLogo: logo.Copy(),
		ChannelRing: ring.Copy(),
		ChannelSync: sync.Copy(),
	}
}

// Live returns a copy of the live preset of the given channel
func (s *Store) Live(channel Channel) Preset {
	return s.mustGet(s.live, channel).Copy()
}

// Committed returns a copy of the committed preset of the given channel
func (s *Store) Committed(channel Channel) Preset {
	return s.mustGet(s.committed, channel).Copy()
}

// SetLive replaces the live preset of the given channel
func (s *Store) SetLive(channel Channel, p Preset) {
	s.mustGet(s.live, channel)
	s.live[channel] = p.WithChannel(channel)
}

// SetLiveColors replaces only the colors of the live preset of the given channel
func (s *Store) SetLiveColors(channel Channel, colors []color.RGB) {
	p := s.mustGet(s.live, channel)
	p.Colors = color.Copy(colors)
	s.live[channel] = p
}

// Promote copies the live preset of the given channel into the committed snapshot
func (s *Store) Promote(channel Channel) {
	s.committed[channel] = s.mustGet(s.live, channel).Copy()
}

func (s *Store) mustGet(m map[Channel]Preset, channel Channel) Preset {
	p, ok := m[channel]
	if !ok {
		panic(fmt.Sprintf("unknown channel: %s", channel))
	}
	return p
}
