package store

import (
	"testing"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedProject populates a store with one collaborator per role and one
// budget item, returning their records.
func seedProject(t *testing.T, s *Store) (model.Collaborator, model.Collaborator, model.BudgetItem) {
	t.Helper()

	if err := s.SaveProject(model.Project{Name: "Obra Teste"}); err != nil {
		t.Fatalf("save project: %v", err)
	}
	prof, err := s.AddCollaborator(model.Collaborator{
		Name: "Ana", Role: model.RoleProfissional, StartDate: "2024-01-02",
	})
	if err != nil {
		t.Fatalf("add prof: %v", err)
	}
	serv, err := s.AddCollaborator(model.Collaborator{
		Name: "Bruno", Role: model.RoleServente, StartDate: "2024-01-02",
	})
	if err != nil {
		t.Fatalf("add serv: %v", err)
	}
	item, err := s.AddBudgetItem(model.BudgetItem{
		Code: "1.1", Description: "Alvenaria", Unit: "m2",
		Quantity: 100, EstimatedProfHours: 50, EstimatedServHours: 80,
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return prof, serv, item
}

func TestSaveProject_PreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveProject(model.Project{Name: "Obra A", HourlyRateProf: 60}); err != nil {
		t.Fatal(err)
	}
	first, err := s.GetProject()
	if err != nil || first == nil {
		t.Fatalf("get project: %v %v", first, err)
	}

	if err := s.SaveProject(model.Project{Name: "Obra A renomeada", HourlyRateProf: 70}); err != nil {
		t.Fatal(err)
	}
	second, _ := s.GetProject()
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on resave: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.HourlyRateProf != 70 {
		t.Fatalf("rate not updated: %v", second.HourlyRateProf)
	}
}

func TestAddDailyLog_GateEnforced(t *testing.T) {
	s := newTestStore(t)
	prof, _, item := seedProject(t, s)

	// First 6 hours pass.
	d, err := s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-15", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 6,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !d.Allowed {
		t.Fatalf("first entry rejected: %q", d.Reason)
	}

	// 6 + 3 breaches the ceiling: rejected, collection unchanged.
	d, err = s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-15", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Allowed || d.Reason != engine.ReasonDailyCeiling {
		t.Fatalf("ceiling breach: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
	logs, _ := s.ListDailyLogs("2024-01-15", "")
	if len(logs) != 1 {
		t.Fatalf("rejected entry persisted: %d logs", len(logs))
	}

	// 6 + 2 hits exactly 8: accepted.
	d, _ = s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-15", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 2,
	})
	if !d.Allowed {
		t.Fatalf("exact ceiling rejected: %q", d.Reason)
	}
}

func TestAddDailyLog_JustificationStoredOnlyWhenOverBudget(t *testing.T) {
	s := newTestStore(t)
	prof, _, item := seedProject(t, s)

	// Within budget: a supplied justification is dropped.
	d, err := s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-15", CollaboratorID: prof.ID, BudgetItemID: item.ID,
		Hours: 8, Justification: "não necessária",
	})
	if err != nil || !d.Allowed {
		t.Fatalf("in-budget entry: %v %+v", err, d)
	}
	logs, _ := s.ListDailyLogs("2024-01-15", "")
	if logs[0].Justification != "" {
		t.Fatalf("in-budget justification persisted: %q", logs[0].Justification)
	}

	// Burn through the remaining professional budget across days.
	for _, date := range []string{"2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19", "2024-01-22"} {
		if d, _ := s.AddDailyLog(model.DailyLogEntry{
			Date: date, CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 8,
		}); !d.Allowed {
			t.Fatalf("%s: %q", date, d.Reason)
		}
	}

	// 48 consumed of 50: going past needs a justification.
	d, _ = s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-23", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 4,
	})
	if d.Allowed || d.Reason != engine.ReasonMissingJustification {
		t.Fatalf("unjustified overrun: allowed=%v reason=%q", d.Allowed, d.Reason)
	}

	d, _ = s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-23", CollaboratorID: prof.ID, BudgetItemID: item.ID,
		Hours: 4, Justification: "retrabalho por chuva",
	})
	if !d.Allowed || !d.OverBudget {
		t.Fatalf("justified overrun: allowed=%v overBudget=%v", d.Allowed, d.OverBudget)
	}
	logs, _ = s.ListDailyLogs("2024-01-23", "")
	if logs[0].Justification != "retrabalho por chuva" {
		t.Fatalf("justification not persisted: %q", logs[0].Justification)
	}
}

func TestUpsertPlan_ReplacesInPlaceAndClamps(t *testing.T) {
	s := newTestStore(t)
	_, _, item := seedProject(t, s)

	if err := s.UpsertPlan(item.ID, "2024-01", 40); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertPlan(item.ID, "2024-02", 30); err != nil {
		t.Fatal(err)
	}

	// Rewriting the same pair replaces, not appends.
	if err := s.UpsertPlan(item.ID, "2024-01", 140); err != nil {
		t.Fatal(err)
	}
	plans, _ := s.ListPlans("")
	if len(plans) != 2 {
		t.Fatalf("plan count = %d, want 2", len(plans))
	}
	jan, _ := s.ListPlans("2024-01")
	if len(jan) != 1 || jan[0].ProjectedPercentage != 100 {
		t.Fatalf("january plan = %+v, want one plan clamped to 100", jan)
	}

	// Negative input clamps to zero.
	if err := s.UpsertPlan(item.ID, "2024-02", -5); err != nil {
		t.Fatal(err)
	}
	feb, _ := s.ListPlans("2024-02")
	if feb[0].ProjectedPercentage != 0 {
		t.Fatalf("february plan = %v, want 0", feb[0].ProjectedPercentage)
	}
}

func TestUpsertFinancial_OnePerMonth(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertFinancial(model.FinancialRecord{Month: "2024-01", HRHours: 300, PayrollCost: 12000}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertFinancial(model.FinancialRecord{Month: "2024-01", HRHours: 320, PayrollCost: 12500, IndirectCost: 900}); err != nil {
		t.Fatal(err)
	}

	records, _ := s.ListFinancials()
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].PayrollCost != 12500 || records[0].IndirectCost != 900 {
		t.Fatalf("record not replaced: %+v", records[0])
	}
}

func TestListBudgetItems_NumericCodeOrder(t *testing.T) {
	s := newTestStore(t)
	for _, code := range []string{"1.10", "2.1", "1.2", "1.9"} {
		if _, err := s.AddBudgetItem(model.BudgetItem{Code: code, Description: code, Unit: "vb"}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := s.ListBudgetItems()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1.2", "1.9", "1.10", "2.1"}
	for i, code := range want {
		if items[i].Code != code {
			t.Fatalf("position %d: %q, want %q", i, items[i].Code, code)
		}
	}
}

func TestDeleteCollaborator_SoftOrphansLogs(t *testing.T) {
	s := newTestStore(t)
	prof, _, item := seedProject(t, s)

	if d, _ := s.AddDailyLog(model.DailyLogEntry{
		Date: "2024-01-15", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 5,
	}); !d.Allowed {
		t.Fatalf("seed entry rejected: %q", d.Reason)
	}

	if err := s.DeleteCollaborator(prof.ID); err != nil {
		t.Fatal(err)
	}

	// The entry survives; role-scoped aggregation now sees zero, the
	// role-less total still counts the hours.
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if got := engine.HoursConsumed(snap, item.ID, model.RoleProfissional, ""); got != 0 {
		t.Fatalf("orphaned role hours = %v, want 0", got)
	}
	if got := engine.HoursConsumed(snap, item.ID, "", ""); got != 5 {
		t.Fatalf("orphaned total hours = %v, want 5", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	prof, serv, item := seedProject(t, s)

	if err := s.UpsertPlan(item.ID, "2024-01", 50); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertQuantity(item.ID, "2024-01", 40); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertFinancial(model.FinancialRecord{Month: "2024-01", PayrollCost: 1400}); err != nil {
		t.Fatal(err)
	}
	for _, e := range []model.DailyLogEntry{
		{Date: "2024-01-10", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 4},
		{Date: "2024-01-11", CollaboratorID: prof.ID, BudgetItemID: item.ID, Hours: 6},
		{Date: "2024-01-10", CollaboratorID: serv.ID, BudgetItemID: item.ID, Hours: 8},
		{Date: "2024-01-11", CollaboratorID: serv.ID, BudgetItemID: item.ID, Hours: 7},
	} {
		if d, err := s.AddDailyLog(e); err != nil || !d.Allowed {
			t.Fatalf("seed log %+v: %v %q", e, err, d.Reason)
		}
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	summary := engine.ReconcileCosts(snap, "2024-01")
	if summary.PredictedCost != 2650 || summary.MeasuredCost != 1025 || summary.ActualCost != 1400 {
		t.Fatalf("reconciled costs = %+v, want 2650/1025/1400", summary)
	}

	ranked := engine.RankByExecution(engine.AnalyzeProductivity(snap, "2024-01"), 5)
	if len(ranked) != 1 || !ranked[0].Efficient {
		t.Fatalf("productivity through store = %+v", ranked)
	}
}
