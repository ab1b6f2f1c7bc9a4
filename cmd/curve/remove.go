package curve

import (
	"strconv"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the control point at the given index from a curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		if err := s.RemoveCurvePoint(curveId, index); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		ui.Success("Removed point %d from curve %s", index, curveId)
		return nil
	},
}

func init() {
	Command.AddCommand(removeCmd)
}
