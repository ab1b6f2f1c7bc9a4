package engine

import (
	"fmt"
	"github.com/markusressel/kraken2go/internal/preset"
)

// InvalidPresetError is returned by Commit when a preset cannot be transmitted as-is.
// Live state is left untouched.
type InvalidPresetError struct {
	Channel preset.Channel
	Reason  string
}

func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("invalid preset for channel %s: %s", e.Channel, e.Reason)
}

func newInvalidPresetError(channel preset.Channel, format string, a ...interface{}) error {
	return &InvalidPresetError{
		Channel: channel,
		Reason:  fmt.Sprintf(format, a...),
	}
}
