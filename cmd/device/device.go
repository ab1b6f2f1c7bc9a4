package device

import (
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "device",
	Short:            "Device related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&global.DeviceId,
		"device", "d",
		"",
		"Device ID as specified in the config",
	)
}

func deviceType(config configuration.DeviceConfig) string {
	switch {
	case config.Virtual != nil:
		return "virtual"
	case config.File != nil:
		return "file"
	case config.Cmd != nil:
		return "cmd"
	case config.HwMon != nil:
		return "hwmon"
	default:
		return "unknown"
	}
}
