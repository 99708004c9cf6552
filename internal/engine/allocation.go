package engine

import "obratrack/internal/model"

// RejectReason says why a proposed daily entry was not allowed.
type RejectReason string

const (
	ReasonNone                 RejectReason = ""
	ReasonNonPositiveHours     RejectReason = "hours must be positive"
	ReasonDailyCeiling         RejectReason = "daily 8h ceiling exceeded"
	ReasonMissingJustification RejectReason = "justification required when exceeding item budget"
)

// EntryDecision is the outcome of gating one proposed daily log entry.
type EntryDecision struct {
	Allowed         bool
	Reason          RejectReason
	OverBudget      bool
	RemainingBudget float64 // item hours left for the collaborator's role, before this entry
}

// HoursLoggedFor sums the hours a collaborator already logged on one
// calendar date, across all budget items.
func HoursLoggedFor(s *Snapshot, collaboratorID, date string) float64 {
	var total float64
	for _, l := range s.Logs {
		if l.CollaboratorID == collaboratorID && l.Date == date {
			total += l.Hours
		}
	}
	return total
}

// RemainingCapacity returns how many hours the collaborator can still log
// on the given date before hitting the daily ceiling.
func RemainingCapacity(s *Snapshot, collaboratorID, date string) float64 {
	return model.DailyWorkHours - HoursLoggedFor(s, collaboratorID, date)
}

// ConsumedHoursForItem sums all hours ever logged against an item by
// collaborators of the given role. This is the lifetime running total used
// to detect over-budget before accepting a new entry.
func ConsumedHoursForItem(s *Snapshot, itemID string, role model.Role) float64 {
	var total float64
	for _, l := range s.Logs {
		if l.BudgetItemID != itemID {
			continue
		}
		c, ok := s.Collaborator(l.CollaboratorID)
		if !ok || c.Role != role {
			continue
		}
		total += l.Hours
	}
	return total
}

// EvaluateEntry applies the allocation rules to a proposed daily log entry,
// in order: positive hours, the hard daily ceiling, then the over-budget
// justification requirement. The entry is not created here; callers persist
// it only when the decision allows, storing the justification only when the
// decision was over budget.
func EvaluateEntry(s *Snapshot, collaboratorID, itemID string, hours float64, date, justification string) EntryDecision {
	if hours <= 0 {
		return EntryDecision{Reason: ReasonNonPositiveHours}
	}

	if HoursLoggedFor(s, collaboratorID, date)+hours > model.DailyWorkHours {
		return EntryDecision{Reason: ReasonDailyCeiling}
	}

	// A dangling item or collaborator reference degrades to "no budget
	// tracked": the entry passes without the justification requirement.
	var d EntryDecision
	if item, ok := s.Item(itemID); ok {
		if c, ok := s.Collaborator(collaboratorID); ok {
			limit := item.EstimatedHoursFor(c.Role)
			consumed := ConsumedHoursForItem(s, itemID, c.Role)
			d.OverBudget = consumed+hours > limit
			d.RemainingBudget = limit - consumed
		}
	}
	if d.OverBudget && justification == "" {
		d.Reason = ReasonMissingJustification
		return d
	}

	d.Allowed = true
	return d
}
