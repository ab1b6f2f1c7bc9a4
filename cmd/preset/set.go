package preset

import (
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var (
	mode   string
	speed  string
	colors []string
	fill   string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the preset of a channel and commit it to the device",
	Long: `Edit the preset of a channel and commit it to the device.

Mode and speed of the sync channel are applied to logo and ring.`,
	Example: `  kraken2go preset set --channel ring --mode fading --colors ff0000,0000ff --speed slowest`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := preset.ParseChannel(channelName)
		if err != nil {
			return err
		}

		var edit session.PresetEdit
		if cmd.Flags().Changed("mode") {
			edit.Mode = &mode
		}
		if cmd.Flags().Changed("speed") {
			edit.Speed = &speed
		}
		if cmd.Flags().Changed("colors") {
			edit.Colors = colors
			if edit.Colors == nil {
				edit.Colors = []string{}
			}
		}

		if cmd.Flags().Changed("fill") {
			edit.Fill = &fill
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		if err := s.Edit(channel, edit); err != nil {
			return err
		}
		if err := s.Commit(); err != nil {
			return err
		}

		p := s.Preset(channel)
		ui.Success("Committed %s: mode=%s speed=%s colors=%s", channel, p.Mode, p.Speed, formatColors(p.Colors))
		return nil
	},
}

func init() {
	setCmd.Flags().StringVarP(&mode, "mode", "m", "", "Color mode")
	setCmd.Flags().StringVarP(&speed, "speed", "s", "", "Animation speed")
	setCmd.Flags().StringSliceVarP(&colors, "colors", "", nil, "Comma separated list of hex colors")
	setCmd.Flags().StringVarP(&fill, "fill", "", "", "Hex color applied to every color of the channel")
	Command.AddCommand(setCmd)
}
