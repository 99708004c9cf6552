package store

import "obratrack/internal/engine"

// Snapshot reads all seven collections into an engine snapshot. The engine
// treats it as immutable for the duration of one computation; commands load
// a fresh snapshot per invocation rather than holding one open.
func (s *Store) Snapshot() (*engine.Snapshot, error) {
	snap := &engine.Snapshot{}
	var err error

	if snap.Project, err = s.GetProject(); err != nil {
		return nil, err
	}
	if snap.Team, err = s.ListCollaborators(); err != nil {
		return nil, err
	}
	if snap.Budget, err = s.ListBudgetItems(); err != nil {
		return nil, err
	}
	if snap.Logs, err = s.ListDailyLogs("", ""); err != nil {
		return nil, err
	}
	if snap.Plans, err = s.ListPlans(""); err != nil {
		return nil, err
	}
	if snap.Quantities, err = s.ListQuantities(""); err != nil {
		return nil, err
	}
	if snap.Financials, err = s.ListFinancials(); err != nil {
		return nil, err
	}

	return snap, nil
}
