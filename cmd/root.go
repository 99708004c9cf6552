package cmd

import (
	"fmt"
	"os"
	"time"

	"obratrack/internal/cli"
	"obratrack/internal/config"
	"obratrack/internal/engine"
	"obratrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagMonth  string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "obratrack",
	Short: "Controle de mão de obra para obras",
	Long:  "Track construction labor against the budget: daily hours, monthly plans, productivity and cost reconciliation.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Database path (default: config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month filter (YYYY-MM, default: current month)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// openStore is the shared database opening path used by all commands.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		cfg, _ := config.Load()
		path = cfg.DefaultDBPath()
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return s, nil
}

// loadSnapshot opens the store and assembles the full project snapshot.
// The caller owns the store and must Close it.
func loadSnapshot() (*store.Store, *engine.Snapshot, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.Snapshot()
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("loading project data: %w", err)
	}
	return s, snap, nil
}

// selectedMonth resolves the --month flag, defaulting to the current month.
func selectedMonth() string {
	if flagMonth != "" {
		return flagMonth
	}
	return time.Now().Format("2006-01")
}

func runOverview(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	if snap.Project == nil {
		fmt.Println("\n  No project configured yet. Run `obratrack setup` to get started.")
		return nil
	}

	month := selectedMonth()
	summary := engine.ReconcileCosts(snap, month)
	rateProf, rateServ := snap.Rates()

	fmt.Println()
	fmt.Println(cli.RenderTitle(snap.Project.Name))
	fmt.Println()

	rows := [][]string{
		{"Collaborators", fmt.Sprintf("%d", len(snap.Team))},
		{"Budget items", fmt.Sprintf("%d", len(snap.Budget))},
		{"Hourly rates", fmt.Sprintf("%s prof / %s serv", cli.FormatCurrency(rateProf), cli.FormatCurrency(rateServ))},
		{"---"},
		{"Hours logged (" + month + ")", cli.FormatHours(engine.TotalLoggedHours(snap, month))},
		{"Planned hours (" + month + ")", cli.FormatHours(engine.TotalPlannedHours(snap, month))},
		{"Predicted cost (" + month + ")", cli.FormatCurrency(summary.PredictedCost)},
		{"Measured cost (" + month + ")", cli.FormatCurrency(summary.MeasuredCost)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Overview", ""},
		Rows:    rows,
	}))

	for _, w := range engine.PlanWarnings(snap) {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("item %s planned at %s accumulated", w.Item.Code, cli.FormatPercent(w.Accumulated))))
	}
	fmt.Println()

	return nil
}
