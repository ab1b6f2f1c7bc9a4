package curve

import (
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/spf13/cobra"
)

var curveId string

var Command = &cobra.Command{
	Use:              "curve",
	Short:            "Fan and pump curve related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&global.DeviceId,
		"device", "d",
		"",
		"Device ID as specified in the config",
	)
	Command.PersistentFlags().StringVarP(
		&curveId,
		"id", "i",
		curves.FanCurveId,
		"Curve ID, one of: fan | pump",
	)
}
