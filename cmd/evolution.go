package cmd

import (
	"fmt"

	"obratrack/internal/cli"
	"obratrack/internal/engine"

	"github.com/spf13/cobra"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution",
	Short: "Month-by-month cost and hour series with running totals",
	RunE:  runEvolution,
}

func init() {
	rootCmd.AddCommand(evolutionCmd)
}

func runEvolution(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	points := engine.BuildEvolution(snap)
	if len(points) == 0 {
		fmt.Println("\n  No monthly data yet. Log hours or set plans first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EVOLUTION"))
	fmt.Println()

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Month,
			cli.FormatCurrency(p.PredictedCost),
			cli.FormatCurrency(p.MeasuredCost),
			cli.FormatCurrency(p.PayrollCost),
			cli.FormatCurrency(p.CumPredictedCost),
			cli.FormatCurrency(p.CumMeasuredCost),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Predicted", "Measured", "Payroll", "Σ Predicted", "Σ Measured"},
		Rows:    rows,
	}))

	predicted := make([]float64, len(points))
	measured := make([]float64, len(points))
	for i, p := range points {
		predicted[i] = p.CumPredictedCost
		measured[i] = p.CumMeasuredCost
	}

	fmt.Printf("  Predicted  %s\n", cli.RenderSparkline(predicted))
	fmt.Printf("  Measured   %s\n", cli.RenderSparkline(measured))
	fmt.Println()

	return nil
}
