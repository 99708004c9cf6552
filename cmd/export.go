package cmd

import (
	"fmt"

	"obratrack/internal/engine"
	"obratrack/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports to CSV or JSON",
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full monthly report as JSON",
	RunE:  runExportReport,
}

var exportProductivityCmd = &cobra.Command{
	Use:   "productivity",
	Short: "Productivity report as CSV",
	RunE:  runExportProductivity,
}

var exportEvolutionCmd = &cobra.Command{
	Use:   "evolution",
	Short: "Evolution series as CSV",
	RunE:  runExportEvolution,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&flagExportOut, "out", "o", "", "Output file path")
	exportCmd.MarkPersistentFlagRequired("out")

	exportCmd.AddCommand(exportReportCmd, exportProductivityCmd, exportEvolutionCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportReport(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()
	prod := engine.AnalyzeProductivity(snap, month)
	costs := engine.ReconcileCosts(snap, month)
	evo := engine.BuildEvolution(snap)

	if err := export.ReportToJSON(month, prod, costs, evo, flagExportOut); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Report for %s written to %s\n", month, flagExportOut)
	}
	return nil
}

func runExportProductivity(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	month := selectedMonth()
	prod := engine.AnalyzeProductivity(snap, month)

	if err := export.ProductivityToCSV(prod, flagExportOut); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Productivity for %s written to %s\n", month, flagExportOut)
	}
	return nil
}

func runExportEvolution(_ *cobra.Command, _ []string) error {
	s, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer s.Close()

	points := engine.BuildEvolution(snap)

	if err := export.EvolutionToCSV(points, flagExportOut); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Evolution series written to %s\n", flagExportOut)
	}
	return nil
}
