package engine

import "obratrack/internal/model"

// ItemCost holds the predicted and measured labor cost for one budget item
// in one month. Deviation is predicted minus measured: positive means under
// budget, negative means overrun.
type ItemCost struct {
	Item          model.BudgetItem
	PredictedCost float64
	MeasuredCost  float64
	Deviation     float64
}

// CostSummary reconciles the three cost views for one month: predicted
// (planned hours at base rates), measured (logged hours at base rates) and
// actual (HR payroll). Actual cost is project-level, not split per item.
type CostSummary struct {
	Month         string
	PredictedCost float64
	MeasuredCost  float64
	ActualCost    float64
	IndirectCost  float64
	Items         []ItemCost
}

// PredictedCost prices the month's planned hours for one item at the
// project's base rates.
func PredictedCost(s *Snapshot, itemID, month string) float64 {
	rateProf, rateServ := s.Rates()
	planned := PlannedFor(s, itemID, month)
	return planned.ProfHours*rateProf + planned.ServHours*rateServ
}

// MeasuredCost prices the month's logged hours for one item at the
// project's base rates.
func MeasuredCost(s *Snapshot, itemID, month string) float64 {
	rateProf, rateServ := s.Rates()
	prof := HoursConsumed(s, itemID, model.RoleProfissional, month)
	serv := HoursConsumed(s, itemID, model.RoleServente, month)
	return prof*rateProf + serv*rateServ
}

// ActualCost returns the payroll cost HR reported for the month, or 0 when
// no record exists.
func ActualCost(s *Snapshot, month string) float64 {
	f, ok := s.FinancialFor(month)
	if !ok {
		return 0
	}
	return f.PayrollCost
}

// ReconcileCosts builds the full cost picture for one month: per-item
// predicted/measured costs in budget-code order plus the aggregates.
func ReconcileCosts(s *Snapshot, month string) CostSummary {
	summary := CostSummary{
		Month:      month,
		ActualCost: ActualCost(s, month),
		Items:      make([]ItemCost, 0, len(s.Budget)),
	}
	if f, ok := s.FinancialFor(month); ok {
		summary.IndirectCost = f.IndirectCost
	}

	for _, item := range s.Budget {
		ic := ItemCost{
			Item:          item,
			PredictedCost: PredictedCost(s, item.ID, month),
			MeasuredCost:  MeasuredCost(s, item.ID, month),
		}
		ic.Deviation = ic.PredictedCost - ic.MeasuredCost

		summary.PredictedCost += ic.PredictedCost
		summary.MeasuredCost += ic.MeasuredCost
		summary.Items = append(summary.Items, ic)
	}

	return summary
}
