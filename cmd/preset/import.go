package preset

import (
	"os"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import presets from a sharing export (json or yaml) and commit them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := util.ExpandPath(args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return &profile.IOError{Op: "read", Path: path, Err: err}
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		imported, err := profile.ImportSharing(data, s.Profile())
		if err != nil {
			return err
		}
		if err := s.Import(imported); err != nil {
			return err
		}
		ui.Success("Imported presets from %s", path)
		return nil
	},
}

func init() {
	Command.AddCommand(importCmd)
}
