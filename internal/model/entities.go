// Package model defines the domain records obratrack tracks: the project,
// its team, the budget breakdown and the four time-series logs.
package model

import "time"

// Role is the worker classification. It decides which hourly rate and
// which budget-hour bucket an entry counts against.
type Role string

const (
	RoleProfissional Role = "PROFISSIONAL"
	RoleServente     Role = "SERVENTE"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleProfissional || r == RoleServente
}

// DailyWorkHours is the hard per-collaborator daily ceiling.
const DailyWorkHours = 8.0

// Default hourly rates applied when the project doesn't set its own.
const (
	DefaultRateProf = 50.0
	DefaultRateServ = 35.0
)

// Project holds the single construction project being tracked.
type Project struct {
	Name           string
	CreatedAt      time.Time
	HourlyRateProf float64
	HourlyRateServ float64
}

// Collaborator is one worker on the team. EndDate is empty while the
// collaborator is still active.
type Collaborator struct {
	ID        string
	Name      string
	Role      Role
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD, optional
}

// BudgetItem is one line of the project's work breakdown. Code is the
// hierarchical identifier ("1.2", "3.1.4") and orders the sheet.
type BudgetItem struct {
	ID                 string
	Code               string
	Description        string
	Unit               string // m², m³, vb, ...
	Quantity           float64
	EstimatedValue     float64
	EstimatedProfHours float64
	EstimatedServHours float64
}

// EstimatedHoursFor returns the item's hour budget for one role.
func (b BudgetItem) EstimatedHoursFor(role Role) float64 {
	if role == RoleProfissional {
		return b.EstimatedProfHours
	}
	return b.EstimatedServHours
}

// DailyLogEntry records hours one collaborator spent on one budget item on
// one calendar day. Justification is set only when the entry pushed the
// item's consumed hours past its role budget.
type DailyLogEntry struct {
	ID             string
	Date           string // YYYY-MM-DD
	CollaboratorID string
	BudgetItemID   string
	Hours          float64
	Justification  string
}

// MonthlyPlan is the projected completion percentage for one budget item in
// one month. Percentages are per-month; their sum across months may exceed
// 100, which is surfaced as a warning rather than rejected.
type MonthlyPlan struct {
	ID                  string
	Month               string // YYYY-MM
	BudgetItemID        string
	ProjectedPercentage float64
}

// QuantitativeLog is the physically measured quantity executed for one
// budget item in one month.
type QuantitativeLog struct {
	ID               string
	Month            string // YYYY-MM
	BudgetItemID     string
	ExecutedQuantity float64
}

// FinancialRecord is the HR payroll figures for one month. At most one
// record exists per month.
type FinancialRecord struct {
	ID           string
	Month        string // YYYY-MM
	HRHours      float64
	PayrollCost  float64
	IndirectCost float64
}

// MonthOf truncates a YYYY-MM-DD date to its YYYY-MM month.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
