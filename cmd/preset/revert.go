package preset

import (
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var revertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Transmit the last committed presets to the device again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		s.Revert()
		if err := s.CommitChannel(preset.ChannelSync); err != nil {
			return err
		}
		ui.Success("Restored presets of %s", s.DeviceId())
		return nil
	},
}

func init() {
	Command.AddCommand(revertCmd)
}
