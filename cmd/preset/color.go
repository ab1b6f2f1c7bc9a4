package preset

import (
	"fmt"
	"strconv"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:     "color <index> <color>",
	Short:   "Replace a single color of a channel and commit it to the device",
	Example: `  kraken2go preset color --channel ring 3 ff00ff`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := preset.ParseChannel(channelName)
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid color index '%s': %w", args[0], err)
		}
		c, err := color.ParseHex(args[1])
		if err != nil {
			return err
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		if err := s.SetColor(channel, index, c); err != nil {
			return err
		}
		if err := s.Commit(); err != nil {
			return err
		}

		ui.Success("Committed %s: colors=%s", channel, formatColors(s.Preset(channel).Colors))
		return nil
	},
}

func init() {
	Command.AddCommand(colorCmd)
}
