package store

import (
	"database/sql"
	"fmt"
	"time"

	"obratrack/internal/model"
)

// SaveProject creates or replaces the single project row. The creation
// timestamp of an existing project is preserved.
func (s *Store) SaveProject(p model.Project) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if existing, err := s.GetProject(); err == nil && existing != nil {
		p.CreatedAt = existing.CreatedAt
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO project (id, name, created_at, hourly_rate_prof, hourly_rate_serv)
		 VALUES (1, ?, ?, ?, ?)`,
		p.Name, p.CreatedAt.Format(time.RFC3339), p.HourlyRateProf, p.HourlyRateServ,
	)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

// GetProject returns the project, or nil when setup hasn't run yet.
func (s *Store) GetProject() (*model.Project, error) {
	var p model.Project
	var createdAt string

	err := s.db.QueryRow(
		`SELECT name, created_at, hourly_rate_prof, hourly_rate_serv FROM project WHERE id = 1`,
	).Scan(&p.Name, &createdAt, &p.HourlyRateProf, &p.HourlyRateServ)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}
