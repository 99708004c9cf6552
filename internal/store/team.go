package store

import (
	"fmt"

	"github.com/google/uuid"

	"obratrack/internal/model"
)

// AddCollaborator inserts a new team member and returns it with its ID set.
func (s *Store) AddCollaborator(c model.Collaborator) (model.Collaborator, error) {
	if !c.Role.Valid() {
		return c, fmt.Errorf("invalid role %q", c.Role)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO collaborators (id, name, role, start_date, end_date) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, string(c.Role), c.StartDate, c.EndDate,
	)
	if err != nil {
		return c, fmt.Errorf("add collaborator: %w", err)
	}
	return c, nil
}

// ListCollaborators returns the team ordered by name.
func (s *Store) ListCollaborators() ([]model.Collaborator, error) {
	rows, err := s.db.Query(
		`SELECT id, name, role, start_date, end_date FROM collaborators ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()

	var team []model.Collaborator
	for rows.Next() {
		var c model.Collaborator
		var role string
		if err := rows.Scan(&c.ID, &c.Name, &role, &c.StartDate, &c.EndDate); err != nil {
			return nil, err
		}
		c.Role = model.Role(role)
		team = append(team, c)
	}
	return team, rows.Err()
}

// SetCollaboratorEndDate marks a collaborator as having left the project.
func (s *Store) SetCollaboratorEndDate(id, endDate string) error {
	res, err := s.db.Exec(`UPDATE collaborators SET end_date = ? WHERE id = ?`, endDate, id)
	if err != nil {
		return fmt.Errorf("set end date: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("collaborator %s not found", id)
	}
	return nil
}

// DeleteCollaborator removes a team member. Daily log entries referencing
// the collaborator are left in place (soft orphaning); aggregates treat them
// as role-less.
func (s *Store) DeleteCollaborator(id string) error {
	_, err := s.db.Exec(`DELETE FROM collaborators WHERE id = ?`, id)
	return err
}
