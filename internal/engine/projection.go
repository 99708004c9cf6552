package engine

import "obratrack/internal/model"

// PlannedFigures are the quantity and hours a monthly plan projects for one
// budget item, derived from the item's totals and the plan's percentage.
type PlannedFigures struct {
	Quantity  float64
	ProfHours float64
	ServHours float64
}

// TotalHours is the planned professional + laborer hours combined.
func (p PlannedFigures) TotalHours() float64 {
	return p.ProfHours + p.ServHours
}

// PlannedFor derives the planned quantity and hours for an (item, month)
// pair. A missing plan or a dangling item reference yields all zeros.
func PlannedFor(s *Snapshot, itemID, month string) PlannedFigures {
	plan, ok := s.PlanFor(itemID, month)
	if !ok {
		return PlannedFigures{}
	}
	item, ok := s.Item(itemID)
	if !ok {
		return PlannedFigures{}
	}

	pct := plan.ProjectedPercentage / 100
	return PlannedFigures{
		Quantity:  item.Quantity * pct,
		ProfHours: item.EstimatedProfHours * pct,
		ServHours: item.EstimatedServHours * pct,
	}
}

// AccumulatedPercentage sums the projected percentage over every plan for
// one item, across all months. The sum is not clamped: values above 100
// signal over-planning and are surfaced to the caller as-is.
func AccumulatedPercentage(s *Snapshot, itemID string) float64 {
	var total float64
	for _, p := range s.Plans {
		if p.BudgetItemID == itemID {
			total += p.ProjectedPercentage
		}
	}
	return total
}

// ClampPercentage bounds a single month's percentage to [0,100]. Applied at
// write time only; the cross-month accumulation stays unclamped.
func ClampPercentage(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// TotalPlannedHours sums the planned hours of every budget item for a month.
func TotalPlannedHours(s *Snapshot, month string) float64 {
	var total float64
	for _, item := range s.Budget {
		total += PlannedFor(s, item.ID, month).TotalHours()
	}
	return total
}

// OverPlannedItem pairs a budget item with its accumulated percentage when
// that sum exceeds 100.
type OverPlannedItem struct {
	Item        model.BudgetItem
	Accumulated float64
}

// PlanWarnings lists the over-planned items in budget-code order.
func PlanWarnings(s *Snapshot) []OverPlannedItem {
	var warns []OverPlannedItem
	for _, item := range s.Budget {
		if acc := AccumulatedPercentage(s, item.ID); acc > 100 {
			warns = append(warns, OverPlannedItem{Item: item, Accumulated: acc})
		}
	}
	return warns
}
