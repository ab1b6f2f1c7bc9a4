package curve

import (
	"strconv"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <temperature> <duty>",
	Short:   "Add a control point to a curve",
	Example: `  kraken2go curve add --id pump 45 80`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		temperature, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		duty, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		index, err := s.AddCurvePoint(curveId, temperature, duty)
		if err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		ui.Success("Added point %d to curve %s", index, curveId)
		return nil
	},
}

func init() {
	Command.AddCommand(addCmd)
}
