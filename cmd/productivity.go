package cmd

import (
	"fmt"

	"obratrack/internal/cli"
	"obratrack/internal/engine"

	"github.com/spf13/cobra"
)

var flagProdAll bool

var productivityCmd = &cobra.Command{
	Use:   "productivity",
	Short: "Realized vs predicted productivity per item",
	RunE:  runProductivity,
}

func init() {
	productivityCmd.Flags().BoolVar(&flagProdAll, "all", false, "Show every item, not just the top 5 by execution")
	rootCmd.AddCommand(productivityCmd)
}

func runProductivity(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()
	items := engine.AnalyzeProductivity(snap, month)

	if len(items) == 0 {
		fmt.Println("\n  No budget items to analyze.")
		return nil
	}

	title := "PRODUCTIVITY  " + month
	if !flagProdAll {
		items = engine.RankByExecution(items, 5)
		title += "  Top 5"
		if len(items) == 0 {
			fmt.Printf("\n  No executed quantities recorded for %s.\n", month)
			return nil
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.Item.Code,
			p.Item.Description,
			cli.FormatQuantity(p.ExecutedQuantity, p.Item.Unit),
			cli.FormatHours(p.HoursUsed),
			cli.FormatProductivity(p.RealizedProductivity),
			cli.FormatProductivity(p.PredictedProductivity),
			cli.RenderBadge(p.Efficient),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Code", "Description", "Executed", "Hours", "Realized", "Predicted", "Status"},
		Rows:    rows,
	}))
	fmt.Println("  Productivity is hours per unit: lower realized than predicted means the crew is ahead.")
	fmt.Println()

	return nil
}
