package curve

import (
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/markusressel/kraken2go/internal/util"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the control points and a plot of all curves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := global.OpenSession()
		if err != nil {
			return err
		}

		for idx, id := range s.CurveIds() {
			curve, err := s.Curve(id)
			if err != nil {
				return err
			}
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}
			printCurve(curve)
		}
		return nil
	},
}

func printCurve(curve *curves.ControlCurve) {
	ui.Printfln(curve.Id())

	var rows [][]string
	for i, p := range curve.Points() {
		rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(p.Temperature), strconv.Itoa(p.Duty)})
	}
	global.PrintTable([]string{"Index", "Temperature (°C)", "Duty (%)"}, rows)

	points := curve.Points()
	start := points[0].Temperature
	stop := points[len(points)-1].Temperature
	steps := make(map[int]float64, len(points))
	for _, p := range points {
		steps[p.Temperature] = float64(p.Duty)
	}
	interpolated := util.InterpolateLinearly(&steps, start, stop)
	values := make([]float64, 0, len(interpolated))
	for _, t := range util.SortedKeys(interpolated) {
		values = append(values, interpolated[t])
	}

	caption := "Duty (%) / Temperature (°C " + strconv.Itoa(start) + ".." + strconv.Itoa(stop) + ")"
	graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
	ui.Printfln(graph)
}

func init() {
	Command.AddCommand(listCmd)
}
