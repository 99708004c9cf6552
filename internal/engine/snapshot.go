// Package engine holds the pure analytics over one snapshot of the project
// data: daily allocation gating, budget consumption, monthly projections,
// productivity and cost reconciliation, and the evolution (S-curve) series.
//
// Every function takes the snapshot it operates on and returns derived
// values without mutating anything. Dangling references (a log pointing at a
// deleted item or collaborator) contribute zero instead of failing.
package engine

import "obratrack/internal/model"

// Snapshot is a read-only view of the six entity collections plus the
// project record, assembled by the caller for the duration of one
// computation.
type Snapshot struct {
	Project    *model.Project
	Team       []model.Collaborator
	Budget     []model.BudgetItem
	Logs       []model.DailyLogEntry
	Plans      []model.MonthlyPlan
	Quantities []model.QuantitativeLog
	Financials []model.FinancialRecord
}

// Rates returns the project hourly rates, falling back to the defaults when
// no project exists or a rate was never set.
func (s *Snapshot) Rates() (prof, serv float64) {
	prof, serv = model.DefaultRateProf, model.DefaultRateServ
	if s.Project != nil {
		if s.Project.HourlyRateProf > 0 {
			prof = s.Project.HourlyRateProf
		}
		if s.Project.HourlyRateServ > 0 {
			serv = s.Project.HourlyRateServ
		}
	}
	return prof, serv
}

// Item looks up a budget item by ID.
func (s *Snapshot) Item(id string) (model.BudgetItem, bool) {
	for _, b := range s.Budget {
		if b.ID == id {
			return b, true
		}
	}
	return model.BudgetItem{}, false
}

// Collaborator looks up a team member by ID.
func (s *Snapshot) Collaborator(id string) (model.Collaborator, bool) {
	for _, c := range s.Team {
		if c.ID == id {
			return c, true
		}
	}
	return model.Collaborator{}, false
}

// PlanFor returns the monthly plan for an (item, month) pair.
func (s *Snapshot) PlanFor(itemID, month string) (model.MonthlyPlan, bool) {
	for _, p := range s.Plans {
		if p.BudgetItemID == itemID && p.Month == month {
			return p, true
		}
	}
	return model.MonthlyPlan{}, false
}

// QuantityFor returns the executed quantity measured for an (item, month)
// pair, or 0 when no measurement exists.
func (s *Snapshot) QuantityFor(itemID, month string) float64 {
	for _, q := range s.Quantities {
		if q.BudgetItemID == itemID && q.Month == month {
			return q.ExecutedQuantity
		}
	}
	return 0
}

// FinancialFor returns the payroll record for a month.
func (s *Snapshot) FinancialFor(month string) (model.FinancialRecord, bool) {
	for _, f := range s.Financials {
		if f.Month == month {
			return f, true
		}
	}
	return model.FinancialRecord{}, false
}
