package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

var budgetHeader = []string{"code", "description", "unit", "quantity", "estimated_value", "prof_hours", "serv_hours"}

// BudgetToCSV writes the budget spreadsheet (EAP) to path, one row per item.
func BudgetToCSV(items []model.BudgetItem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(budgetHeader); err != nil {
		return err
	}

	for _, it := range items {
		row := []string{
			it.Code,
			it.Description,
			it.Unit,
			formatFloat(it.Quantity),
			formatFloat(it.EstimatedValue),
			formatFloat(it.EstimatedProfHours),
			formatFloat(it.EstimatedServHours),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// BudgetFromCSV parses a budget spreadsheet. A header row matching the
// export format is skipped; IDs are left empty for the store to assign.
func BudgetFromCSV(r io.Reader) ([]model.BudgetItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(budgetHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var items []model.BudgetItem
	for i, rec := range records {
		if i == 0 && rec[0] == budgetHeader[0] {
			continue
		}

		qty, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity: %w", i+1, err)
		}
		val, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: estimated_value: %w", i+1, err)
		}
		prof, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: prof_hours: %w", i+1, err)
		}
		serv, err := strconv.ParseFloat(rec[6], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: serv_hours: %w", i+1, err)
		}

		items = append(items, model.BudgetItem{
			Code:               rec[0],
			Description:        rec[1],
			Unit:               rec[2],
			Quantity:           qty,
			EstimatedValue:     val,
			EstimatedProfHours: prof,
			EstimatedServHours: serv,
		})
	}

	return items, nil
}

// ProductivityToCSV writes the productivity report for a month.
func ProductivityToCSV(items []engine.ItemProductivity, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"code", "description", "executed_quantity", "hours_used", "realized_productivity", "predicted_productivity", "efficient"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range items {
		row := []string{
			p.Item.Code,
			p.Item.Description,
			formatFloat(p.ExecutedQuantity),
			formatFloat(p.HoursUsed),
			formatFloat(p.RealizedProductivity),
			formatFloat(p.PredictedProductivity),
			strconv.FormatBool(p.Efficient),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// EvolutionToCSV writes the monthly evolution series with running totals.
func EvolutionToCSV(points []engine.EvolutionPoint, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"month", "predicted_cost", "measured_cost", "payroll_cost", "predicted_hours", "measured_hours", "cum_predicted_cost", "cum_measured_cost", "cum_payroll_cost"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{
			p.Month,
			formatFloat(p.PredictedCost),
			formatFloat(p.MeasuredCost),
			formatFloat(p.PayrollCost),
			formatFloat(p.PredictedHours),
			formatFloat(p.MeasuredHours),
			formatFloat(p.CumPredictedCost),
			formatFloat(p.CumMeasuredCost),
			formatFloat(p.CumPayrollCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
