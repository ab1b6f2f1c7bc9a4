package preset

import (
	"fmt"
	"strings"
)

// Channel is one of the addressable lighting targets of a device
type Channel string

const (
	ChannelLogo Channel = "logo"
	ChannelRing Channel = "ring"
	// ChannelSync is a virtual channel addressing logo and ring at once
	ChannelSync Channel = "sync"
)

var (
	Channels         = []Channel{ChannelLogo, ChannelRing, ChannelSync}
	HardwareChannels = []Channel{ChannelLogo, ChannelRing}
)

// ParseChannel parses a channel name, ignoring case. "both" is accepted as an alias for sync.
func ParseChannel(value string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ChannelLogo):
		return ChannelLogo, nil
	case string(ChannelRing):
		return ChannelRing, nil
	case string(ChannelSync), "both":
		return ChannelSync, nil
	default:
		return "", fmt.Errorf("unknown channel '%s', use one of: logo | ring | sync", value)
	}
}

// IsHardware reports whether this channel has its own target on the device
func (c Channel) IsHardware() bool {
	return c == ChannelLogo || c == ChannelRing
}

// Targets returns the hardware channels affected when writing to this channel
func (c Channel) Targets() []Channel {
	if c == ChannelSync {
		return HardwareChannels
	}
	return []Channel{c}
}

func (c Channel) String() string {
	return string(c)
}
