package device

import (
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.ReadAndValidateConfig()

		config := configuration.CurrentConfig
		defaultDevice, _ := config.DefaultDevice()

		var rows [][]string
		for _, d := range config.Devices {
			marker := ""
			if d.ID == defaultDevice.ID {
				marker = "*"
			}
			rows = append(rows, []string{marker, d.ID, deviceType(d), d.Catalog, d.Extends})
		}
		global.PrintTable([]string{"", "ID", "Type", "Catalog", "Extends"}, rows)
		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
