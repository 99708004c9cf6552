package engine

import (
	"sort"

	"obratrack/internal/model"
)

// EvolutionPoint carries one month of the project timeline: the month's
// discrete hours and costs plus the cumulative-to-date accumulators that
// form the S-curve.
type EvolutionPoint struct {
	Month string

	PredictedCost float64
	MeasuredCost  float64
	PayrollCost   float64

	PredictedHours float64
	MeasuredHours  float64

	CumPredictedCost float64
	CumMeasuredCost  float64
	CumPayrollCost   float64

	CumPredictedHours float64
	CumMeasuredHours  float64
}

// BuildEvolution merges every month appearing in logs, plans and financial
// records into an ascending timeline and computes monthly plus cumulative
// hours and costs. The series is recomputed in full on every call; month
// counts stay small for the lifetime of a construction project.
func BuildEvolution(s *Snapshot) []EvolutionPoint {
	months := timelineMonths(s)

	rateProf, rateServ := s.Rates()
	points := make([]EvolutionPoint, 0, len(months))

	var cum EvolutionPoint
	for _, month := range months {
		p := EvolutionPoint{Month: month, PayrollCost: ActualCost(s, month)}

		for _, item := range s.Budget {
			planned := PlannedFor(s, item.ID, month)
			prof := HoursConsumed(s, item.ID, model.RoleProfissional, month)
			serv := HoursConsumed(s, item.ID, model.RoleServente, month)

			p.PredictedCost += planned.ProfHours*rateProf + planned.ServHours*rateServ
			p.MeasuredCost += prof*rateProf + serv*rateServ
			p.PredictedHours += planned.TotalHours()
			p.MeasuredHours += prof + serv
		}

		cum.CumPredictedCost += p.PredictedCost
		cum.CumMeasuredCost += p.MeasuredCost
		cum.CumPayrollCost += p.PayrollCost
		cum.CumPredictedHours += p.PredictedHours
		cum.CumMeasuredHours += p.MeasuredHours

		p.CumPredictedCost = cum.CumPredictedCost
		p.CumMeasuredCost = cum.CumMeasuredCost
		p.CumPayrollCost = cum.CumPayrollCost
		p.CumPredictedHours = cum.CumPredictedHours
		p.CumMeasuredHours = cum.CumMeasuredHours

		points = append(points, p)
	}

	return points
}

// timelineMonths collects the distinct YYYY-MM months across the three
// time-series collections, sorted ascending. Lexicographic order is
// chronological for YYYY-MM strings.
func timelineMonths(s *Snapshot) []string {
	seen := make(map[string]struct{})
	for _, l := range s.Logs {
		seen[model.MonthOf(l.Date)] = struct{}{}
	}
	for _, p := range s.Plans {
		seen[p.Month] = struct{}{}
	}
	for _, f := range s.Financials {
		seen[f.Month] = struct{}{}
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}
