package cmd

import (
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kraken2go",
	Long:  `All software has versions. This is kraken2go's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
