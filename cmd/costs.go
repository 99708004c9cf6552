package cmd

import (
	"fmt"

	"obratrack/internal/cli"
	"obratrack/internal/engine"

	"github.com/spf13/cobra"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Monthly cost reconciliation: predicted, measured and actual",
	RunE:  runCosts,
}

func init() {
	rootCmd.AddCommand(costsCmd)
}

func runCosts(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()
	summary := engine.ReconcileCosts(snap, month)

	fmt.Println()
	fmt.Println(cli.RenderTitle("COSTS  " + month))
	fmt.Println()

	itemRows := make([][]string, 0, len(summary.Items)+2)
	for _, ic := range summary.Items {
		if ic.PredictedCost == 0 && ic.MeasuredCost == 0 {
			continue
		}
		itemRows = append(itemRows, []string{
			ic.Item.Code,
			ic.Item.Description,
			cli.FormatCurrency(ic.PredictedCost),
			cli.FormatCurrency(ic.MeasuredCost),
			cli.RenderDeviation(ic.Deviation),
		})
	}
	if len(itemRows) > 0 {
		itemRows = append(itemRows, []string{"---"})
		itemRows = append(itemRows, []string{
			"TOTAL", "",
			cli.FormatCurrency(summary.PredictedCost),
			cli.FormatCurrency(summary.MeasuredCost),
			cli.RenderDeviation(summary.PredictedCost - summary.MeasuredCost),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Item",
			Headers: []string{"Code", "Description", "Predicted", "Measured", "Deviation"},
			Rows:    itemRows,
		}))
	} else {
		fmt.Println("  No planned or logged costs for this month.")
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Reconciliation",
		Headers: []string{"Source", "Cost"},
		Rows: [][]string{
			{"Predicted (plan)", cli.FormatCurrency(summary.PredictedCost)},
			{"Measured (daily logs)", cli.FormatCurrency(summary.MeasuredCost)},
			{"Actual (HR payroll)", cli.FormatCurrency(summary.ActualCost)},
			{"Indirect", cli.FormatCurrency(summary.IndirectCost)},
		},
	}))
	fmt.Println()

	return nil
}
