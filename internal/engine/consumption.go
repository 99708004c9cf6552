package engine

import "obratrack/internal/model"

// HoursConsumed sums logged hours against one budget item, optionally
// filtered to one role (empty Role means both) and one YYYY-MM month (empty
// means all time). Entries whose collaborator no longer exists count only in
// the role-less total, since their role is unknown.
func HoursConsumed(s *Snapshot, itemID string, role model.Role, month string) float64 {
	var total float64
	for _, l := range s.Logs {
		if l.BudgetItemID != itemID {
			continue
		}
		if month != "" && model.MonthOf(l.Date) != month {
			continue
		}
		if role != "" {
			c, ok := s.Collaborator(l.CollaboratorID)
			if !ok || c.Role != role {
				continue
			}
		}
		total += l.Hours
	}
	return total
}

// TotalLoggedHours sums every logged hour in a month across all items.
func TotalLoggedHours(s *Snapshot, month string) float64 {
	var total float64
	for _, l := range s.Logs {
		if model.MonthOf(l.Date) == month {
			total += l.Hours
		}
	}
	return total
}
