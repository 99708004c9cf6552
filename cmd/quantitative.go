package cmd

import (
	"fmt"

	"obratrack/internal/cli"

	"github.com/spf13/cobra"
)

var flagQuantQty float64

var quantCmd = &cobra.Command{
	Use:     "quantitative",
	Aliases: []string{"quant"},
	Short:   "Monthly executed quantities per budget item",
	RunE:    runQuantList,
}

var quantSetCmd = &cobra.Command{
	Use:   "set <item-code>",
	Short: "Record the executed quantity for an item in a month",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuantSet,
}

var quantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List executed quantities for the selected month",
	RunE:  runQuantList,
}

func init() {
	quantSetCmd.Flags().Float64Var(&flagQuantQty, "qty", 0, "Executed quantity in the item's unit")
	quantSetCmd.MarkFlagRequired("qty")

	quantCmd.AddCommand(quantSetCmd, quantListCmd)
	rootCmd.AddCommand(quantCmd)
}

func runQuantSet(_ *cobra.Command, args []string) error {
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
	if err := s.UpsertQuantity(item.ID, month, flagQuantQty); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Recorded %s executed on %s in %s\n",
			cli.FormatQuantity(flagQuantQty, item.Unit), item.Code, month)
	}
	return nil
}

func runQuantList(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()

	rows := make([][]string, 0, len(snap.Budget))
	for _, it := range snap.Budget {
		qty := snap.QuantityFor(it.ID, month)
		if qty == 0 {
			continue
		}
		pct := ""
		if it.Quantity > 0 {
			pct = cli.FormatPercent(qty / it.Quantity * 100)
		}
		rows = append(rows, []string{
			it.Code,
			it.Description,
			cli.FormatQuantity(qty, it.Unit),
			cli.FormatQuantity(it.Quantity, it.Unit),
			pct,
		})
	}

	if len(rows) == 0 {
		fmt.Printf("\n  No quantities recorded for %s.\n", month)
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Executed  " + month,
		Headers: []string{"Code", "Description", "Executed", "Contracted", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
