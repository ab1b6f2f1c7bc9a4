package preset

import (
	"strings"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/spf13/cobra"
)

var channelName string

var Command = &cobra.Command{
	Use:              "preset",
	Short:            "Lighting preset related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&global.DeviceId,
		"device", "d",
		"",
		"Device ID as specified in the config",
	)
	Command.PersistentFlags().StringVarP(
		&channelName,
		"channel", "", string(preset.ChannelSync),
		"Channel to operate on, one of: logo | ring | sync",
	)
}

func formatColors(colors []color.RGB) string {
	hex := make([]string, 0, len(colors))
	for _, c := range colors {
		hex = append(hex, c.String())
	}
	return strings.Join(hex, " ")
}
