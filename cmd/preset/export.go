package preset

import (
	"fmt"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the committed presets in the sharing format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := profile.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		if len(exportOutput) <= 0 {
			pterm.DisableOutput()
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		data, err := profile.EncodeSharing(s.Profile(), format)
		if err != nil {
			return err
		}

		if len(exportOutput) <= 0 {
			fmt.Println(string(data))
			return nil
		}

		path, err := util.ExpandPath(exportOutput)
		if err != nil {
			return err
		}
		if err := util.WriteFileAtomic(path, data); err != nil {
			return err
		}
		ui.Success("Exported presets of %s to %s", s.DeviceId(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(profile.FormatJson), "Output format, one of: json | yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, defaults to stdout")
	Command.AddCommand(exportCmd)
}
