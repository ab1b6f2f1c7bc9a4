package curve

import (
	"fmt"
	"strconv"

	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dutyCmd = &cobra.Command{
	Use:   "duty <temperature>",
	Short: "Print the duty a curve computes for the given liquid temperature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		temperature, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}

		s, err := global.OpenSession()
		if err != nil {
			return err
		}
		curve, err := s.Curve(curveId)
		if err != nil {
			return err
		}
		fmt.Printf("%d", curve.DutyAt(temperature))
		return nil
	},
}

func init() {
	Command.AddCommand(dutyCmd)
}
