package preset

import (
	"fmt"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/preset"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the committed presets of all channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := global.OpenSession()
		if err != nil {
			return err
		}

		snapshot := s.Snapshot()
		var rows [][]string
		for _, channel := range preset.Channels {
			p := snapshot.Committed[channel]
			mode := p.Mode
			if channel == preset.ChannelSync {
				mode = snapshot.MirroredMode
			}
			used := fmt.Sprintf("%d/%d", len(snapshot.Valid[channel]), len(p.Colors))
			rows = append(rows, []string{channel.String(), mode, p.Speed, used, formatColors(p.Colors)})
		}

		ui.Printfln(s.DeviceId())
		global.PrintTable([]string{"Channel", "Mode", "Speed", "Used", "Colors"}, rows)
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
