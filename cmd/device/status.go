package device

import (
	"fmt"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current status of a device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := global.OpenSession()
		if err != nil {
			return err
		}

		items, err := s.Adapter().GetStatus()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, item := range items {
			rows = append(rows, []string{item.Label, fmt.Sprintf("%.1f", item.Value)})
		}
		ui.Printfln(s.DeviceId())
		global.PrintTable([]string{"Label", "Value"}, rows)
		return nil
	},
}

func init() {
	Command.AddCommand(statusCmd)
}
