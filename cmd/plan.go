package cmd

import (
	"fmt"

	"obratrack/internal/cli"
	"obratrack/internal/engine"

	"github.com/spf13/cobra"
)

var flagPlanPct float64

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Monthly execution plans per budget item",
	RunE:  runPlanList,
}

var planSetCmd = &cobra.Command{
	Use:   "set <item-code>",
	Short: "Set the projected percentage for an item in a month",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanSet,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans with derived quantities and hours",
	RunE:  runPlanList,
}

func init() {
	planSetCmd.Flags().Float64VarP(&flagPlanPct, "pct", "p", 0, "Projected percentage of the item (0-100)")
	planSetCmd.MarkFlagRequired("pct")

	planCmd.AddCommand(planSetCmd, planListCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanSet(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	item, err := s.FindBudgetItemByCode(args[0])
	if err != nil {
		return err
	}

	month := selectedMonth()
	if err := s.UpsertPlan(item.ID, month, flagPlanPct); err != nil {
		return err
	}

	snap, err := s.Snapshot()
	if err != nil {
		return err
	}

	if !flagQuiet {
		planned := engine.PlannedFor(snap, item.ID, month)
		fmt.Printf("  Plan for %s in %s: %s → %s, %s prof + %s serv\n",
			item.Code, month,
			cli.FormatPercent(engine.ClampPercentage(flagPlanPct)),
			cli.FormatQuantity(planned.Quantity, item.Unit),
			cli.FormatHours(planned.ProfHours),
			cli.FormatHours(planned.ServHours))
	}

	acc := engine.AccumulatedPercentage(snap, item.ID)
	if acc > 100 {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("item %s now planned at %s across all months", item.Code, cli.FormatPercent(acc))))
	}

	return nil
}

func runPlanList(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()

	rows := make([][]string, 0, len(snap.Budget))
	var totalHours float64
	for _, it := range snap.Budget {
		plan, ok := snap.PlanFor(it.ID, month)
		if !ok {
			continue
		}
		planned := engine.PlannedFor(snap, it.ID, month)
		totalHours += planned.TotalHours()
		rows = append(rows, []string{
			it.Code,
			it.Description,
			cli.FormatPercent(plan.ProjectedPercentage),
			cli.FormatQuantity(planned.Quantity, it.Unit),
			cli.FormatHours(planned.ProfHours),
			cli.FormatHours(planned.ServHours),
		})
	}

	if len(rows) == 0 {
		fmt.Printf("\n  No plans for %s. Set one with `obratrack plan set`.\n", month)
		return nil
	}

	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", "", "", cli.FormatHours(totalHours)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Plan  " + month,
		Headers: []string{"Code", "Description", "Planned", "Qty", "Prof", "Serv"},
		Rows:    rows,
	}))

	for _, w := range engine.PlanWarnings(snap) {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("item %s planned at %s accumulated", w.Item.Code, cli.FormatPercent(w.Accumulated))))
	}
	fmt.Println()

	return nil
}
