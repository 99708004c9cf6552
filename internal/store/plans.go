package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

// UpsertPlan writes the projected percentage for an (item, month) pair,
// replacing any existing plan for that exact pair. The percentage is
// clamped to [0,100]; the cross-month accumulation is left to the engine's
// warning path.
func (s *Store) UpsertPlan(itemID, month string, pct float64) error {
	pct = engine.ClampPercentage(pct)

	res, err := s.db.Exec(
		`UPDATE monthly_plans SET projected_percentage = ? WHERE budget_item_id = ? AND month = ?`,
		pct, itemID, month,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	_, err = s.db.Exec(
		`INSERT INTO monthly_plans (id, month, budget_item_id, projected_percentage) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), month, itemID, pct,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// ListPlans returns plans, optionally filtered to one month, oldest first.
func (s *Store) ListPlans(month string) ([]model.MonthlyPlan, error) {
	query := `SELECT id, month, budget_item_id, projected_percentage FROM monthly_plans`
	var args []any
	if month != "" {
		query += ` WHERE month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY month, budget_item_id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []model.MonthlyPlan
	for rows.Next() {
		var p model.MonthlyPlan
		if err := rows.Scan(&p.ID, &p.Month, &p.BudgetItemID, &p.ProjectedPercentage); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
