package device

import (
	"strconv"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Print the color modes and animation speeds supported by a device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		caps := device.Capabilities(s.Adapter())

		var modeRows [][]string
		for _, m := range caps.Modes.Modes() {
			ringOnly := ""
			if m.RingOnly {
				ringOnly = "yes"
			}
			modeRows = append(modeRows, []string{m.Name, strconv.Itoa(m.MinColors), strconv.Itoa(m.MaxColors), ringOnly})
		}
		ui.Printfln(s.DeviceId())
		global.PrintTable([]string{"Mode", "Min Colors", "Max Colors", "Ring Only"}, modeRows)

		var speedRows [][]string
		for _, name := range caps.Speeds.Names() {
			value, _ := caps.Speeds.Value(name)
			speedRows = append(speedRows, []string{name, strconv.Itoa(value)})
		}
		global.PrintTable([]string{"Speed", "Value"}, speedRows)
		return nil
	},
}

func init() {
	Command.AddCommand(modesCmd)
}
