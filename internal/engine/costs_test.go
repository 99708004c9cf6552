package engine

import (
	"testing"

	"obratrack/internal/model"
)

func TestReconcileCosts_EndToEnd(t *testing.T) {
	s := endToEndSnapshot()
	s.Financials = []model.FinancialRecord{
		{ID: "f1", Month: "2024-01", HRHours: 30, PayrollCost: 1400, IndirectCost: 200},
	}

	summary := ReconcileCosts(s, "2024-01")

	// 25*50 + 40*35 = 2650.
	if summary.PredictedCost != 2650 {
		t.Errorf("PredictedCost = %v, want 2650", summary.PredictedCost)
	}
	// 10*50 + 15*35 = 1025.
	if summary.MeasuredCost != 1025 {
		t.Errorf("MeasuredCost = %v, want 1025", summary.MeasuredCost)
	}
	if summary.ActualCost != 1400 {
		t.Errorf("ActualCost = %v, want 1400", summary.ActualCost)
	}
	if summary.IndirectCost != 200 {
		t.Errorf("IndirectCost = %v, want 200", summary.IndirectCost)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("got %d item costs, want 1", len(summary.Items))
	}
	ic := summary.Items[0]
	if ic.Deviation != 2650-1025 {
		t.Errorf("Deviation = %v, want 1625", ic.Deviation)
	}
}

func TestReconcileCosts_EmptyMonthIsZero(t *testing.T) {
	s := endToEndSnapshot()

	summary := ReconcileCosts(s, "2024-06")
	if summary.PredictedCost != 0 || summary.MeasuredCost != 0 || summary.ActualCost != 0 {
		t.Fatalf("empty month: %+v, want all zeros", summary)
	}
}

func TestReconcileCosts_CustomRates(t *testing.T) {
	s := endToEndSnapshot()
	s.Project = &model.Project{Name: "Obra Norte", HourlyRateProf: 80, HourlyRateServ: 40}

	summary := ReconcileCosts(s, "2024-01")

	// Planned 25 prof + 40 serv hours at 80/40.
	if summary.PredictedCost != 25*80+40*40 {
		t.Errorf("PredictedCost = %v, want %v", summary.PredictedCost, 25*80+40*40.0)
	}
	// Logged 10 prof + 15 serv hours.
	if summary.MeasuredCost != 10*80+15*40 {
		t.Errorf("MeasuredCost = %v, want %v", summary.MeasuredCost, 10*80+15*40.0)
	}
}

func TestRates_Defaults(t *testing.T) {
	s := &Snapshot{}
	prof, serv := s.Rates()
	if prof != 50 || serv != 35 {
		t.Fatalf("Rates with no project = %v/%v, want 50/35", prof, serv)
	}

	s.Project = &model.Project{Name: "x"} // rates never set
	prof, serv = s.Rates()
	if prof != 50 || serv != 35 {
		t.Fatalf("Rates with zero-rate project = %v/%v, want 50/35", prof, serv)
	}
}
