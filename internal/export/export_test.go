package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

func sampleBudget() []model.BudgetItem {
	return []model.BudgetItem{
		{
			ID:                 "b-1",
			Code:               "1.1",
			Description:        "Alvenaria de vedação",
			Unit:               "m2",
			Quantity:           100,
			EstimatedValue:     25000,
			EstimatedProfHours: 50,
			EstimatedServHours: 80,
		},
		{
			ID:                 "b-2",
			Code:               "1.2",
			Description:        "Reboco interno",
			Unit:               "m2",
			Quantity:           250,
			EstimatedValue:     12000,
			EstimatedProfHours: 120,
			EstimatedServHours: 60,
		},
	}
}

// ============================================================
// Budget CSV round trip
// ============================================================

func TestBudgetCSVRoundTrip(t *testing.T) {
	items := sampleBudget()
	path := filepath.Join(t.TempDir(), "budget.csv")

	if err := BudgetToCSV(items, path); err != nil {
		t.Fatalf("BudgetToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	parsed, err := BudgetFromCSV(f)
	if err != nil {
		t.Fatalf("BudgetFromCSV: %v", err)
	}

	if len(parsed) != 2 {
		t.Fatalf("expected 2 items, got %d", len(parsed))
	}
	if parsed[0].Code != "1.1" || parsed[0].Quantity != 100 {
		t.Errorf("first item mismatch: %+v", parsed[0])
	}
	if parsed[1].EstimatedProfHours != 120 || parsed[1].EstimatedServHours != 60 {
		t.Errorf("second item hours mismatch: %+v", parsed[1])
	}
	// IDs are not exported; the store assigns them on import.
	if parsed[0].ID != "" {
		t.Errorf("expected empty ID after import, got %q", parsed[0].ID)
	}
}

func TestBudgetFromCSVWithoutHeader(t *testing.T) {
	in := strings.NewReader("2.1,Pintura,m2,300,9000,40,20\n")

	parsed, err := BudgetFromCSV(in)
	if err != nil {
		t.Fatalf("BudgetFromCSV: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 item, got %d", len(parsed))
	}
	if parsed[0].Code != "2.1" || parsed[0].Quantity != 300 {
		t.Errorf("parsed item mismatch: %+v", parsed[0])
	}
}

func TestBudgetFromCSVBadNumber(t *testing.T) {
	in := strings.NewReader("2.1,Pintura,m2,abc,9000,40,20\n")

	if _, err := BudgetFromCSV(in); err == nil {
		t.Fatal("expected error for non-numeric quantity")
	}
}

// ============================================================
// Report CSVs
// ============================================================

func TestProductivityToCSV(t *testing.T) {
	items := sampleBudget()
	prod := []engine.ItemProductivity{
		{
			Item:                  items[0],
			ExecutedQuantity:      40,
			HoursUsed:             25,
			RealizedProductivity:  0.625,
			PredictedProductivity: 1.3,
			Efficient:             true,
		},
	}
	path := filepath.Join(t.TempDir(), "prod.csv")

	if err := ProductivityToCSV(prod, path); err != nil {
		t.Fatalf("ProductivityToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(records))
	}
	if records[1][0] != "1.1" || records[1][6] != "true" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestEvolutionToCSV(t *testing.T) {
	points := []engine.EvolutionPoint{
		{Month: "2025-01", PredictedCost: 2650, MeasuredCost: 500, CumPredictedCost: 2650, CumMeasuredCost: 500},
		{Month: "2025-02", PredictedCost: 1590, MeasuredCost: 525, CumPredictedCost: 4240, CumMeasuredCost: 1025},
	}
	path := filepath.Join(t.TempDir(), "evo.csv")

	if err := EvolutionToCSV(points, path); err != nil {
		t.Fatalf("EvolutionToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[2][0] != "2025-02" || records[2][6] != "4240" {
		t.Errorf("unexpected cumulative row: %v", records[2])
	}
}

// ============================================================
// JSON
// ============================================================

func TestReportToJSON(t *testing.T) {
	items := sampleBudget()
	prod := []engine.ItemProductivity{
		{Item: items[0], ExecutedQuantity: 40, HoursUsed: 25, RealizedProductivity: 0.625, PredictedProductivity: 1.3, Efficient: true},
	}
	costs := engine.CostSummary{
		Month:         "2025-01",
		PredictedCost: 2650,
		MeasuredCost:  1025,
		ActualCost:    1400,
		IndirectCost:  200,
		Items: []engine.ItemCost{
			{Item: items[0], PredictedCost: 2650, MeasuredCost: 1025, Deviation: 1625},
		},
	}
	evo := []engine.EvolutionPoint{
		{Month: "2025-01", PredictedCost: 2650, CumPredictedCost: 2650},
	}
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ReportToJSON("2025-01", prod, costs, evo, path); err != nil {
		t.Fatalf("ReportToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["month"] != "2025-01" {
		t.Errorf("month = %v, want 2025-01", decoded["month"])
	}
	if decoded["exported_at"] == "" {
		t.Error("missing exported_at")
	}
	costsObj, ok := decoded["costs"].(map[string]any)
	if !ok {
		t.Fatal("missing costs object")
	}
	if costsObj["actual_cost"] != float64(1400) {
		t.Errorf("actual_cost = %v, want 1400", costsObj["actual_cost"])
	}
}
