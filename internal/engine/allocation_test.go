package engine

import (
	"testing"

	"obratrack/internal/model"
)

func TestEvaluateEntry_RejectsNonPositiveHours(t *testing.T) {
	s := testSnapshot()

	for _, hours := range []float64{0, -1} {
		d := EvaluateEntry(s, "c-prof", "item-1", hours, "2024-01-15", "")
		if d.Allowed {
			t.Errorf("hours=%v: entry allowed, want rejected", hours)
		}
		if d.Reason != ReasonNonPositiveHours {
			t.Errorf("hours=%v: reason = %q, want %q", hours, d.Reason, ReasonNonPositiveHours)
		}
	}
}

func TestEvaluateEntry_DailyCeiling(t *testing.T) {
	s := testSnapshot()
	s.Logs = []model.DailyLogEntry{
		{ID: "l1", Date: "2024-01-15", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 6},
	}

	// 6 + 3 = 9 > 8: hard reject, no override.
	d := EvaluateEntry(s, "c-prof", "item-1", 3, "2024-01-15", "any justification")
	if d.Allowed {
		t.Fatal("9h day allowed, want rejected")
	}
	if d.Reason != ReasonDailyCeiling {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonDailyCeiling)
	}

	// 6 + 2 = 8: the exact ceiling is allowed.
	d = EvaluateEntry(s, "c-prof", "item-1", 2, "2024-01-15", "")
	if !d.Allowed {
		t.Fatalf("exact 8h day rejected: reason %q", d.Reason)
	}

	// The ceiling is per date: a different day starts fresh.
	d = EvaluateEntry(s, "c-prof", "item-1", 8, "2024-01-16", "")
	if !d.Allowed {
		t.Fatalf("fresh day rejected: reason %q", d.Reason)
	}
}

func TestEvaluateEntry_OverBudgetRequiresJustification(t *testing.T) {
	s := testSnapshot()
	// 48 of the item's 50 professional hours already consumed, spread over
	// past days so the daily ceiling doesn't interfere.
	s.Logs = []model.DailyLogEntry{
		{ID: "l1", Date: "2024-01-10", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
		{ID: "l2", Date: "2024-01-11", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
		{ID: "l3", Date: "2024-01-12", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
		{ID: "l4", Date: "2024-01-13", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
		{ID: "l5", Date: "2024-01-14", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
		{ID: "l6", Date: "2024-01-15", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 8},
	}

	if got := ConsumedHoursForItem(s, "item-1", model.RoleProfissional); got != 48 {
		t.Fatalf("ConsumedHoursForItem = %v, want 48", got)
	}

	// 48 + 4 = 52 > 50: over budget, justification mandatory.
	d := EvaluateEntry(s, "c-prof", "item-1", 4, "2024-01-16", "")
	if d.Allowed {
		t.Fatal("over-budget entry without justification allowed")
	}
	if d.Reason != ReasonMissingJustification {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonMissingJustification)
	}
	if !d.OverBudget {
		t.Fatal("decision not flagged over budget")
	}
	if d.RemainingBudget != 2 {
		t.Fatalf("RemainingBudget = %v, want 2", d.RemainingBudget)
	}

	// Same entry with a justification passes.
	d = EvaluateEntry(s, "c-prof", "item-1", 4, "2024-01-16", "retrabalho por chuva")
	if !d.Allowed {
		t.Fatalf("justified over-budget entry rejected: reason %q", d.Reason)
	}
	if !d.OverBudget {
		t.Fatal("justified entry lost the over-budget flag")
	}

	// Within budget: 48 + 2 = 50 is not over (strict >).
	d = EvaluateEntry(s, "c-prof", "item-1", 2, "2024-01-16", "")
	if !d.Allowed || d.OverBudget {
		t.Fatalf("exact-budget entry: allowed=%v overBudget=%v, want true/false", d.Allowed, d.OverBudget)
	}

	// Budgets are per role: the laborer bucket still has all 80 hours.
	d = EvaluateEntry(s, "c-serv", "item-1", 8, "2024-01-16", "")
	if !d.Allowed || d.OverBudget {
		t.Fatalf("servente entry: allowed=%v overBudget=%v, want true/false", d.Allowed, d.OverBudget)
	}
}

func TestEvaluateEntry_DanglingReferencesPass(t *testing.T) {
	s := testSnapshot()

	d := EvaluateEntry(s, "c-prof", "no-such-item", 4, "2024-01-15", "")
	if !d.Allowed {
		t.Fatalf("entry against unknown item rejected: reason %q", d.Reason)
	}
	if d.OverBudget {
		t.Fatal("unknown item flagged over budget")
	}
}

func TestRemainingCapacity(t *testing.T) {
	s := testSnapshot()
	s.Logs = []model.DailyLogEntry{
		{ID: "l1", Date: "2024-01-15", CollaboratorID: "c-serv", BudgetItemID: "item-1", Hours: 3},
		{ID: "l2", Date: "2024-01-15", CollaboratorID: "c-serv", BudgetItemID: "item-1", Hours: 2.5},
		{ID: "l3", Date: "2024-01-16", CollaboratorID: "c-serv", BudgetItemID: "item-1", Hours: 8},
	}

	if got := HoursLoggedFor(s, "c-serv", "2024-01-15"); got != 5.5 {
		t.Fatalf("HoursLoggedFor = %v, want 5.5", got)
	}
	if got := RemainingCapacity(s, "c-serv", "2024-01-15"); got != 2.5 {
		t.Fatalf("RemainingCapacity = %v, want 2.5", got)
	}
	if got := RemainingCapacity(s, "c-prof", "2024-01-15"); got != 8 {
		t.Fatalf("untouched collaborator capacity = %v, want 8", got)
	}
}

func TestHoursConsumed_Filters(t *testing.T) {
	s := testSnapshot()
	s.Logs = []model.DailyLogEntry{
		{ID: "l1", Date: "2024-01-10", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 4},
		{ID: "l2", Date: "2024-01-11", CollaboratorID: "c-serv", BudgetItemID: "item-1", Hours: 6},
		{ID: "l3", Date: "2024-02-05", CollaboratorID: "c-prof", BudgetItemID: "item-1", Hours: 5},
		{ID: "l4", Date: "2024-01-12", CollaboratorID: "c-prof", BudgetItemID: "other", Hours: 7},
	}

	if got := HoursConsumed(s, "item-1", "", ""); got != 15 {
		t.Errorf("all-time both roles = %v, want 15", got)
	}
	if got := HoursConsumed(s, "item-1", model.RoleProfissional, ""); got != 9 {
		t.Errorf("all-time prof = %v, want 9", got)
	}
	if got := HoursConsumed(s, "item-1", "", "2024-01"); got != 10 {
		t.Errorf("january both roles = %v, want 10", got)
	}
	if got := HoursConsumed(s, "item-1", model.RoleServente, "2024-02"); got != 0 {
		t.Errorf("february serv = %v, want 0", got)
	}
}
