package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/model"
)

// UpsertFinancial records the HR payroll figures for a month. The month is
// unique: a second write for the same month replaces the first.
func (s *Store) UpsertFinancial(f model.FinancialRecord) error {
	res, err := s.db.Exec(
		`UPDATE financial_records SET hr_hours = ?, payroll_cost = ?, indirect_cost = ? WHERE month = ?`,
		f.HRHours, f.PayrollCost, f.IndirectCost, f.Month,
	)
	if err != nil {
		return fmt.Errorf("update financial record: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	_, err = s.db.Exec(
		`INSERT INTO financial_records (id, month, hr_hours, payroll_cost, indirect_cost)
		 VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Month, f.HRHours, f.PayrollCost, f.IndirectCost,
	)
	if err != nil {
		return fmt.Errorf("insert financial record: %w", err)
	}
	return nil
}

// ListFinancials returns all payroll records, oldest month first.
func (s *Store) ListFinancials() ([]model.FinancialRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, month, hr_hours, payroll_cost, indirect_cost FROM financial_records ORDER BY month`,
	)
	if err != nil {
		return nil, fmt.Errorf("list financial records: %w", err)
	}
	defer rows.Close()

	var records []model.FinancialRecord
	for rows.Next() {
		var f model.FinancialRecord
		if err := rows.Scan(&f.ID, &f.Month, &f.HRHours, &f.PayrollCost, &f.IndirectCost); err != nil {
			return nil, err
		}
		records = append(records, f)
	}
	return records, rows.Err()
}
