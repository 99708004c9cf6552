package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/engine"
	"obratrack/internal/model"
)

// AddDailyLog runs the proposed entry through the allocation gate and
// persists it only when allowed. The returned decision carries the rejection
// reason or the over-budget flag; the justification is stored only when the
// entry actually exceeded the item's role budget.
func (s *Store) AddDailyLog(e model.DailyLogEntry) (engine.EntryDecision, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return engine.EntryDecision{}, err
	}

	d := engine.EvaluateEntry(snap, e.CollaboratorID, e.BudgetItemID, e.Hours, e.Date, e.Justification)
	if !d.Allowed {
		return d, nil
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	justification := ""
	if d.OverBudget {
		justification = e.Justification
	}

	_, err = s.db.Exec(
		`INSERT INTO daily_logs (id, date, collaborator_id, budget_item_id, hours, justification)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.CollaboratorID, e.BudgetItemID, e.Hours, justification,
	)
	if err != nil {
		return d, fmt.Errorf("add daily log: %w", err)
	}
	return d, nil
}

// ListDailyLogs returns entries, optionally filtered to one exact date or
// one YYYY-MM month (pass empty strings for no filter), newest first.
func (s *Store) ListDailyLogs(date, month string) ([]model.DailyLogEntry, error) {
	query := `SELECT id, date, collaborator_id, budget_item_id, hours, justification
	          FROM daily_logs`
	var args []any
	switch {
	case date != "":
		query += ` WHERE date = ?`
		args = append(args, date)
	case month != "":
		query += ` WHERE date LIKE ?`
		args = append(args, month+"%")
	}
	query += ` ORDER BY date DESC, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []model.DailyLogEntry
	for rows.Next() {
		var e model.DailyLogEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.CollaboratorID, &e.BudgetItemID, &e.Hours, &e.Justification); err != nil {
			return nil, err
		}
		logs = append(logs, e)
	}
	return logs, rows.Err()
}

// DeleteDailyLog removes one entry.
func (s *Store) DeleteDailyLog(id string) error {
	_, err := s.db.Exec(`DELETE FROM daily_logs WHERE id = ?`, id)
	return err
}
