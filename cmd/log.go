package cmd

import (
	"fmt"
	"time"

	"obratrack/internal/cli"
	"obratrack/internal/engine"
	"obratrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogDate    string
	flagLogHours   float64
	flagLogItem    string
	flagLogJustify string
	flagLogListDay string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Daily hour allocations",
	RunE:  runLogList,
}

var logAddCmd = &cobra.Command{
	Use:   "add <collaborator-id>",
	Short: "Allocate hours for a collaborator on a budget item",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogAdd,
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily logs for the selected month",
	RunE:  runLogList,
}

var logDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show allocations and remaining capacity for one day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogDay,
}

var logRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a daily log entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogRm,
}

func init() {
	logAddCmd.Flags().StringVar(&flagLogDate, "date", time.Now().Format("2006-01-02"), "Work date (YYYY-MM-DD)")
	logAddCmd.Flags().Float64Var(&flagLogHours, "hours", 0, "Hours worked on the item")
	logAddCmd.Flags().StringVarP(&flagLogItem, "item", "i", "", "Budget item code")
	logAddCmd.Flags().StringVarP(&flagLogJustify, "justify", "j", "", "Justification when exceeding the item budget")
	logAddCmd.MarkFlagRequired("hours")
	logAddCmd.MarkFlagRequired("item")
	logListCmd.Flags().StringVar(&flagLogListDay, "date", "", "Filter to an exact date (YYYY-MM-DD)")

	logCmd.AddCommand(logAddCmd, logListCmd, logDayCmd, logRmCmd)
	rootCmd.AddCommand(logCmd)
}

func runLogAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	item, err := s.FindBudgetItemByCode(flagLogItem)
	if err != nil {
		return err
	}

	decision, err := s.AddDailyLog(model.DailyLogEntry{
		Date:           flagLogDate,
		CollaboratorID: args[0],
		BudgetItemID:   item.ID,
		Hours:          flagLogHours,
		Justification:  flagLogJustify,
	})
	if err != nil {
		return err
	}

	if !decision.Allowed {
		return fmt.Errorf("allocation rejected: %s", decision.Reason)
	}

	if !flagQuiet {
		fmt.Printf("  Logged %s on %s %s (%s)\n",
			cli.FormatHours(flagLogHours), item.Code, item.Description, flagLogDate)
		if decision.OverBudget {
			fmt.Println(cli.RenderWarning("item budget exceeded, justification recorded"))
		} else {
			fmt.Printf("  Remaining budget on item: %s\n", cli.FormatHours(decision.RemainingBudget))
		}
	}
	return nil
}

func runLogList(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := ""
	if flagLogListDay == "" {
		month = selectedMonth()
	}

	logs, err := s.ListDailyLogs(flagLogListDay, month)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("\n  No daily logs in the selected period.")
		return nil
	}

	rows := make([][]string, 0, len(logs))
	var total float64
	for _, e := range logs {
		total += e.Hours
		name := e.CollaboratorID
		if c, ok := snap.Collaborator(e.CollaboratorID); ok {
			name = c.Name
		}
		code := e.BudgetItemID
		if it, ok := snap.Item(e.BudgetItemID); ok {
			code = it.Code
		}
		note := ""
		if e.Justification != "" {
			note = "over budget"
		}
		rows = append(rows, []string{e.Date, name, code, cli.FormatHours(e.Hours), note, e.ID})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", cli.FormatHours(total), "", ""})

	title := "Daily Logs"
	if flagLogListDay != "" {
		title += "  " + flagLogListDay
	} else {
		title += "  " + month
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Date", "Collaborator", "Item", "Hours", "", "ID"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runLogDay(_ *cobra.Command, args []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	date := time.Now().Format("2006-01-02")
	if len(args) == 1 {
		date = args[0]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("Day  " + date))
	fmt.Println()

	rows := make([][]string, 0, len(snap.Team))
	for _, c := range snap.Team {
		logged := engine.HoursLoggedFor(snap, c.ID, date)
		remaining := engine.RemainingCapacity(snap, c.ID, date)
		rows = append(rows, []string{
			c.Name,
			string(c.Role),
			cli.FormatHours(logged),
			cli.FormatHours(remaining),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No collaborators registered.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Collaborator", "Role", "Logged", "Available"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runLogRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteDailyLog(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println("  Log entry removed.")
	}
	return nil
}
