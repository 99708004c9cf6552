package engine

import "obratrack/internal/model"

// testSnapshot builds the fixture shared by the engine tests: one item with
// a 100-unit scope, two collaborators (one per role), rates left at the
// 50/35 defaults.
func testSnapshot() *Snapshot {
	return &Snapshot{
		Team: []model.Collaborator{
			{ID: "c-prof", Name: "Ana", Role: model.RoleProfissional, StartDate: "2024-01-02"},
			{ID: "c-serv", Name: "Bruno", Role: model.RoleServente, StartDate: "2024-01-02"},
		},
		Budget: []model.BudgetItem{
			{
				ID:                 "item-1",
				Code:               "1.1",
				Description:        "Alvenaria de vedação",
				Unit:               "m2",
				Quantity:           100,
				EstimatedValue:     20000,
				EstimatedProfHours: 50,
				EstimatedServHours: 80,
			},
		},
	}
}
