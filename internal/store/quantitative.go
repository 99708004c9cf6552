package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/model"
)

// UpsertQuantity records the executed quantity measured for an (item, month)
// pair, replacing any previous measurement for that pair.
func (s *Store) UpsertQuantity(itemID, month string, quantity float64) error {
	res, err := s.db.Exec(
		`UPDATE quantitative_logs SET executed_quantity = ? WHERE budget_item_id = ? AND month = ?`,
		quantity, itemID, month,
	)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	_, err = s.db.Exec(
		`INSERT INTO quantitative_logs (id, month, budget_item_id, executed_quantity) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), month, itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("insert quantity: %w", err)
	}
	return nil
}

// ListQuantities returns measurements, optionally filtered to one month.
func (s *Store) ListQuantities(month string) ([]model.QuantitativeLog, error) {
	query := `SELECT id, month, budget_item_id, executed_quantity FROM quantitative_logs`
	var args []any
	if month != "" {
		query += ` WHERE month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY month, budget_item_id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quantities: %w", err)
	}
	defer rows.Close()

	var logs []model.QuantitativeLog
	for rows.Next() {
		var q model.QuantitativeLog
		if err := rows.Scan(&q.ID, &q.Month, &q.BudgetItemID, &q.ExecutedQuantity); err != nil {
			return nil, err
		}
		logs = append(logs, q)
	}
	return logs, rows.Err()
}
