package engine

import (
	"sort"

	"obratrack/internal/model"
)

// ItemProductivity compares planned against realized productivity for one
// budget item in one month. Productivity is hours per executed unit, so
// lower realized than predicted means the item is running efficiently.
type ItemProductivity struct {
	Item                  model.BudgetItem
	ExecutedQuantity      float64
	HoursUsed             float64
	RealizedProductivity  float64
	PredictedProductivity float64
	Efficient             bool
}

// AnalyzeProductivity computes the productivity figures for every budget
// item in the given month, in budget-code order. Items with no execution
// measured still appear (with zero realized productivity); RankByExecution
// filters them for the ranked view.
func AnalyzeProductivity(s *Snapshot, month string) []ItemProductivity {
	items := make([]ItemProductivity, 0, len(s.Budget))
	for _, item := range s.Budget {
		executed := s.QuantityFor(item.ID, month)
		hoursUsed := HoursConsumed(s, item.ID, "", month)

		var realized float64
		if executed > 0 {
			realized = hoursUsed / executed
		}

		// Prefer the month's planned figures; fall back to the item's
		// lifetime estimates when nothing was planned.
		var predicted float64
		planned := PlannedFor(s, item.ID, month)
		switch {
		case planned.Quantity > 0:
			predicted = planned.TotalHours() / planned.Quantity
		case item.Quantity > 0:
			predicted = (item.EstimatedProfHours + item.EstimatedServHours) / item.Quantity
		}

		items = append(items, ItemProductivity{
			Item:                  item,
			ExecutedQuantity:      executed,
			HoursUsed:             hoursUsed,
			RealizedProductivity:  realized,
			PredictedProductivity: predicted,
			Efficient:             realized <= predicted,
		})
	}
	return items
}

// RankByExecution drops items with no measured execution, orders the rest by
// descending executed quantity and keeps at most n. Pass n <= 0 for the full
// ranked set.
func RankByExecution(items []ItemProductivity, n int) []ItemProductivity {
	ranked := make([]ItemProductivity, 0, len(items))
	for _, it := range items {
		if it.ExecutedQuantity > 0 {
			ranked = append(ranked, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExecutedQuantity > ranked[j].ExecutedQuantity
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
