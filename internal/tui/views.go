package tui

import (
	"fmt"
	"strings"

	"obratrack/internal/cli"
	"obratrack/internal/engine"
)

func (a App) viewProductivity() string {
	items := engine.AnalyzeProductivity(a.snap, a.month())
	ranked := engine.RankByExecution(items, 5)

	var b strings.Builder
	b.WriteString("  " + headerRowStyle.Render(fmt.Sprintf("%-8s %-28s %10s %8s %10s %10s  %s",
		"Code", "Description", "Executed", "Hours", "Realized", "Predicted", "Status")) + "\n")

	if len(ranked) == 0 {
		b.WriteString("  " + subtleStyle.Render("No executed quantities recorded for this month.") + "\n")
		return b.String()
	}

	for _, p := range ranked {
		status := badTextStyle.Render("Abaixo")
		if p.Efficient {
			status = goodTextStyle.Render("Eficiente")
		}
		b.WriteString("  " + cellStyle.Render(fmt.Sprintf("%-8s %-28s %10s %8s %10s %10s  ",
			p.Item.Code,
			truncate(p.Item.Description, 28),
			cli.FormatQuantity(p.ExecutedQuantity, p.Item.Unit),
			cli.FormatHours(p.HoursUsed),
			cli.FormatProductivity(p.RealizedProductivity),
			cli.FormatProductivity(p.PredictedProductivity),
		)) + status + "\n")
	}

	b.WriteString("\n  " + subtleStyle.Render("Top 5 items by executed quantity. Productivity is hours per unit.") + "\n")
	return b.String()
}

func (a App) viewCosts() string {
	summary := engine.ReconcileCosts(a.snap, a.month())

	var b strings.Builder
	line := func(label string, v float64) {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", label, cellStyle.Render(cli.FormatCurrency(v))))
	}

	line("Predicted (plan)", summary.PredictedCost)
	line("Measured (daily logs)", summary.MeasuredCost)
	line("Actual (HR payroll)", summary.ActualCost)
	line("Indirect", summary.IndirectCost)
	b.WriteString("\n")

	b.WriteString("  " + headerRowStyle.Render(fmt.Sprintf("%-8s %-28s %12s %12s %12s",
		"Code", "Description", "Predicted", "Measured", "Deviation")) + "\n")

	shown := 0
	for _, ic := range summary.Items {
		if ic.PredictedCost == 0 && ic.MeasuredCost == 0 {
			continue
		}
		dev := cli.FormatDeviation(ic.Deviation)
		styled := goodTextStyle.Render(dev)
		if ic.Deviation < 0 {
			styled = badTextStyle.Render(dev)
		}
		b.WriteString("  " + cellStyle.Render(fmt.Sprintf("%-8s %-28s %12s %12s ",
			ic.Item.Code,
			truncate(ic.Item.Description, 28),
			cli.FormatCurrency(ic.PredictedCost),
			cli.FormatCurrency(ic.MeasuredCost),
		)) + styled + "\n")
		shown++
	}
	if shown == 0 {
		b.WriteString("  " + subtleStyle.Render("No planned or logged costs for this month.") + "\n")
	}

	return b.String()
}

func (a App) viewEvolution() string {
	var b strings.Builder
	b.WriteString("  " + headerRowStyle.Render("Monthly cost: ") +
		warnTextStyle.Render("measured") + subtleStyle.Render(" vs ") +
		headerRowStyle.Render("predicted") + "\n\n")
	b.WriteString(a.chart.View())
	b.WriteString("\n")

	points := engine.BuildEvolution(a.snap)
	if len(points) > 0 {
		last := points[len(points)-1]
		b.WriteString(fmt.Sprintf("  Running totals through %s: %s predicted, %s measured, %s payroll\n",
			last.Month,
			cli.FormatCurrency(last.CumPredictedCost),
			cli.FormatCurrency(last.CumMeasuredCost),
			cli.FormatCurrency(last.CumPayrollCost)))
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
