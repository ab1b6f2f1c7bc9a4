package engine

import (
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
)

// Snapshot is a read-only copy of the engine state
type Snapshot struct {
	Active        preset.Channel                   `json:"active"`
	MirroredMode  string                           `json:"mirroredMode"`
	Dirty         bool                             `json:"dirty"`
	DirtyChannels []preset.Channel                 `json:"dirtyChannels"`
	Live          map[preset.Channel]preset.Preset `json:"live"`
	Committed     map[preset.Channel]preset.Preset `json:"committed"`
	// Valid holds the live colors each channel's mode actually uses
	Valid map[preset.Channel][]color.RGB `json:"valid"`
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Active:        e.active,
		MirroredMode:  e.MirroredModeLabel(),
		Dirty:         e.IsDirty(),
		DirtyChannels: e.DirtyChannels(),
		Live:          map[preset.Channel]preset.Preset{},
		Committed:     map[preset.Channel]preset.Preset{},
		Valid:         map[preset.Channel][]color.RGB{},
	}
	if s.DirtyChannels == nil {
		s.DirtyChannels = []preset.Channel{}
	}
	for _, channel := range preset.Channels {
		s.Live[channel] = e.store.Live(channel)
		s.Committed[channel] = e.store.Committed(channel)
		s.Valid[channel] = e.ValidColors(channel)
	}
	return s
}
