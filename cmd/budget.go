package cmd

import (
	"fmt"
	"os"

	"obratrack/internal/cli"
	"obratrack/internal/engine"
	"obratrack/internal/export"
	"obratrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagItemDesc     string
	flagItemUnit     string
	flagItemQty      float64
	flagItemValue    float64
	flagItemProf     float64
	flagItemServ     float64
	flagBudgetDetail bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the budget spreadsheet (EAP)",
	RunE:  runBudgetList,
}

var budgetAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add a budget item",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetAdd,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budget items in code order",
	RunE:  runBudgetList,
}

var budgetImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import budget items from CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetImport,
}

var budgetExportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export budget items to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetExport,
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a budget item",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRm,
}

func init() {
	budgetAddCmd.Flags().StringVar(&flagItemDesc, "desc", "", "Item description")
	budgetAddCmd.Flags().StringVar(&flagItemUnit, "unit", "un", "Measurement unit (m2, m3, un...)")
	budgetAddCmd.Flags().Float64Var(&flagItemQty, "qty", 0, "Contracted quantity")
	budgetAddCmd.Flags().Float64Var(&flagItemValue, "value", 0, "Estimated value (R$)")
	budgetAddCmd.Flags().Float64Var(&flagItemProf, "prof-hours", 0, "Estimated profissional hours")
	budgetAddCmd.Flags().Float64Var(&flagItemServ, "serv-hours", 0, "Estimated servente hours")
	budgetListCmd.Flags().BoolVar(&flagBudgetDetail, "detail", false, "Show hour consumption per item")

	budgetCmd.AddCommand(budgetAddCmd, budgetListCmd, budgetImportCmd, budgetExportCmd, budgetRmCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	item, err := s.AddBudgetItem(model.BudgetItem{
		Code:               args[0],
		Description:        flagItemDesc,
		Unit:               flagItemUnit,
		Quantity:           flagItemQty,
		EstimatedValue:     flagItemValue,
		EstimatedProfHours: flagItemProf,
		EstimatedServHours: flagItemServ,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s %s\n  ID: %s\n", item.Code, item.Description, item.ID)
	}
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(snap.Budget) == 0 {
		fmt.Println("\n  No budget items yet. Add one with `obratrack budget add` or import a CSV.")
		return nil
	}

	rows := make([][]string, 0, len(snap.Budget))
	for _, it := range snap.Budget {
		row := []string{
			it.Code,
			it.Description,
			cli.FormatQuantity(it.Quantity, it.Unit),
			cli.FormatCurrency(it.EstimatedValue),
			cli.FormatHours(it.EstimatedProfHours),
			cli.FormatHours(it.EstimatedServHours),
		}
		if flagBudgetDetail {
			used := engine.HoursConsumed(snap, it.ID, "", "")
			row = append(row, cli.FormatHours(used))
		}
		rows = append(rows, row)
	}

	headers := []string{"Code", "Description", "Qty", "Value", "Prof", "Serv"}
	if flagBudgetDetail {
		headers = append(headers, "Used")
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget",
		Headers: headers,
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runBudgetImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	items, err := export.BudgetFromCSV(f)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ImportBudgetItems(items); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Imported %d budget items from %s\n", len(items), args[0])
	}
	return nil
}

func runBudgetExport(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	items, err := s.ListBudgetItems()
	if err != nil {
		return err
	}

	if err := export.BudgetToCSV(items, args[0]); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Exported %d budget items to %s\n", len(items), args[0])
	}
	return nil
}

func runBudgetRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteBudgetItem(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println("  Budget item removed.")
	}
	return nil
}
