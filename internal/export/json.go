package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"obratrack/internal/engine"
)

type jsonReport struct {
	ExportedAt   string          `json:"exported_at"`
	Month        string          `json:"month,omitempty"`
	Productivity []jsonItemProd  `json:"productivity,omitempty"`
	Costs        *jsonCosts      `json:"costs,omitempty"`
	Evolution    []jsonEvolution `json:"evolution,omitempty"`
}

type jsonItemProd struct {
	Code                  string  `json:"code"`
	Description           string  `json:"description"`
	ExecutedQuantity      float64 `json:"executed_quantity"`
	HoursUsed             float64 `json:"hours_used"`
	RealizedProductivity  float64 `json:"realized_productivity"`
	PredictedProductivity float64 `json:"predicted_productivity"`
	Efficient             bool    `json:"efficient"`
}

type jsonCosts struct {
	PredictedCost float64        `json:"predicted_cost"`
	MeasuredCost  float64        `json:"measured_cost"`
	ActualCost    float64        `json:"actual_cost"`
	IndirectCost  float64        `json:"indirect_cost"`
	Items         []jsonItemCost `json:"items"`
}

type jsonItemCost struct {
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	PredictedCost float64 `json:"predicted_cost"`
	MeasuredCost  float64 `json:"measured_cost"`
	Deviation     float64 `json:"deviation"`
}

type jsonEvolution struct {
	Month            string  `json:"month"`
	PredictedCost    float64 `json:"predicted_cost"`
	MeasuredCost     float64 `json:"measured_cost"`
	PayrollCost      float64 `json:"payroll_cost"`
	PredictedHours   float64 `json:"predicted_hours"`
	MeasuredHours    float64 `json:"measured_hours"`
	CumPredictedCost float64 `json:"cum_predicted_cost"`
	CumMeasuredCost  float64 `json:"cum_measured_cost"`
	CumPayrollCost   float64 `json:"cum_payroll_cost"`
}

// ReportToJSON writes a combined monthly report (productivity, cost
// reconciliation and the full evolution series) as indented JSON.
func ReportToJSON(month string, prod []engine.ItemProductivity, costs engine.CostSummary, evo []engine.EvolutionPoint, path string) error {
	report := jsonReport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Month:      month,
	}

	for _, p := range prod {
		report.Productivity = append(report.Productivity, jsonItemProd{
			Code:                  p.Item.Code,
			Description:           p.Item.Description,
			ExecutedQuantity:      p.ExecutedQuantity,
			HoursUsed:             p.HoursUsed,
			RealizedProductivity:  p.RealizedProductivity,
			PredictedProductivity: p.PredictedProductivity,
			Efficient:             p.Efficient,
		})
	}

	jc := &jsonCosts{
		PredictedCost: costs.PredictedCost,
		MeasuredCost:  costs.MeasuredCost,
		ActualCost:    costs.ActualCost,
		IndirectCost:  costs.IndirectCost,
	}
	for _, ic := range costs.Items {
		jc.Items = append(jc.Items, jsonItemCost{
			Code:          ic.Item.Code,
			Description:   ic.Item.Description,
			PredictedCost: ic.PredictedCost,
			MeasuredCost:  ic.MeasuredCost,
			Deviation:     ic.Deviation,
		})
	}
	report.Costs = jc

	for _, p := range evo {
		report.Evolution = append(report.Evolution, jsonEvolution{
			Month:            p.Month,
			PredictedCost:    p.PredictedCost,
			MeasuredCost:     p.MeasuredCost,
			PayrollCost:      p.PayrollCost,
			PredictedHours:   p.PredictedHours,
			MeasuredHours:    p.MeasuredHours,
			CumPredictedCost: p.CumPredictedCost,
			CumMeasuredCost:  p.CumMeasuredCost,
			CumPayrollCost:   p.CumPayrollCost,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
