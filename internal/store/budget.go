package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

// AddBudgetItem inserts a budget line and returns it with its ID set.
func (s *Store) AddBudgetItem(b model.BudgetItem) (model.BudgetItem, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO budget_items
		 (id, code, description, unit, quantity, estimated_value, estimated_prof_hours, estimated_serv_hours)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Code, b.Description, b.Unit, b.Quantity, b.EstimatedValue,
		b.EstimatedProfHours, b.EstimatedServHours,
	)
	if err != nil {
		return b, fmt.Errorf("add budget item: %w", err)
	}
	return b, nil
}

// ImportBudgetItems inserts a batch of items in one transaction, as produced
// by the CSV importer.
func (s *Store) ImportBudgetItems(items []model.BudgetItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, b := range items {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		_, err := tx.Exec(
			`INSERT INTO budget_items
			 (id, code, description, unit, quantity, estimated_value, estimated_prof_hours, estimated_serv_hours)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.Code, b.Description, b.Unit, b.Quantity, b.EstimatedValue,
			b.EstimatedProfHours, b.EstimatedServHours,
		)
		if err != nil {
			return fmt.Errorf("import item %s: %w", b.Code, err)
		}
	}
	return tx.Commit()
}

// ListBudgetItems returns all items in hierarchical code order.
func (s *Store) ListBudgetItems() ([]model.BudgetItem, error) {
	rows, err := s.db.Query(
		`SELECT id, code, description, unit, quantity, estimated_value,
		        estimated_prof_hours, estimated_serv_hours
		 FROM budget_items`,
	)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	var items []model.BudgetItem
	for rows.Next() {
		var b model.BudgetItem
		err := rows.Scan(&b.ID, &b.Code, &b.Description, &b.Unit, &b.Quantity,
			&b.EstimatedValue, &b.EstimatedProfHours, &b.EstimatedServHours)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// "1.2" before "1.10": numeric-aware ordering, not SQL text order.
	engine.SortBudget(items)
	return items, nil
}

// FindBudgetItemByCode looks an item up by its hierarchical code.
func (s *Store) FindBudgetItemByCode(code string) (model.BudgetItem, error) {
	var b model.BudgetItem
	err := s.db.QueryRow(
		`SELECT id, code, description, unit, quantity, estimated_value,
		        estimated_prof_hours, estimated_serv_hours
		 FROM budget_items WHERE code = ?`, code,
	).Scan(&b.ID, &b.Code, &b.Description, &b.Unit, &b.Quantity,
		&b.EstimatedValue, &b.EstimatedProfHours, &b.EstimatedServHours)
	if err != nil {
		return b, fmt.Errorf("budget item %q: %w", code, err)
	}
	return b, nil
}

// DeleteBudgetItem removes a budget line. Logs, plans and measurements
// referencing it stay behind and aggregate to zero.
func (s *Store) DeleteBudgetItem(id string) error {
	_, err := s.db.Exec(`DELETE FROM budget_items WHERE id = ?`, id)
	return err
}
