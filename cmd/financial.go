package cmd

import (
	"fmt"

	"obratrack/internal/cli"
	"obratrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagFinHRHours  float64
	flagFinPayroll  float64
	flagFinIndirect float64
)

var financialCmd = &cobra.Command{
	Use:   "financial",
	Short: "Monthly figures from HR and accounting",
	RunE:  runFinancialList,
}

var financialSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record HR hours and payroll for the selected month",
	RunE:  runFinancialSet,
}

var financialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List financial records",
	RunE:  runFinancialList,
}

func init() {
	financialSetCmd.Flags().Float64Var(&flagFinHRHours, "hr-hours", 0, "Total hours reported by HR")
	financialSetCmd.Flags().Float64Var(&flagFinPayroll, "payroll", 0, "Payroll cost (R$)")
	financialSetCmd.Flags().Float64Var(&flagFinIndirect, "indirect", 0, "Indirect costs (R$)")

	financialCmd.AddCommand(financialSetCmd, financialListCmd)
	rootCmd.AddCommand(financialCmd)
}

func runFinancialSet(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()
	err = s.UpsertFinancial(model.FinancialRecord{
		Month:        month,
		HRHours:      flagFinHRHours,
		PayrollCost:  flagFinPayroll,
		IndirectCost: flagFinIndirect,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Financials for %s: %s HR hours, %s payroll, %s indirect\n",
			month,
			cli.FormatHours(flagFinHRHours),
			cli.FormatCurrency(flagFinPayroll),
			cli.FormatCurrency(flagFinIndirect))
	}
	return nil
}

func runFinancialList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ListFinancials()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\n  No financial records yet. Add one with `obratrack financial set`.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Month,
			cli.FormatHours(r.HRHours),
			cli.FormatCurrency(r.PayrollCost),
			cli.FormatCurrency(r.IndirectCost),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Financials",
		Headers: []string{"Month", "HR Hours", "Payroll", "Indirect"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
