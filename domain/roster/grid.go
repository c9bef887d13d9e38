package roster

import (
	"goroster/domain/core"
	"goroster/domain/employee"
)

// Cell is one (date, shift) assignment
type Cell struct {
	Date  core.Date `json:"date"`
	Shift Shift     `json:"shift"`
}

// Row is one employee's schedule across the horizon, cells ordered by date
// ascending.
type Row struct {
	Employee employee.Record `json:"employee"`
	Cells    []Cell          `json:"cells"`
}

// Grid is the full roster: one row per employee, in canonical list order.
// Never mutated after Generate builds it.
type Grid struct {
	StartDate   core.Date `json:"start_date"`
	HorizonDays int       `json:"horizon_days"`
	Rows        []Row     `json:"rows"`
}

// Dates returns the horizon's date sequence, ascending. Empty for a
// non-positive horizon.
func (g Grid) Dates() []core.Date {
	if g.HorizonDays <= 0 {
		return nil
	}
	dates := make([]core.Date, g.HorizonDays)
	for d := 0; d < g.HorizonDays; d++ {
		dates[d] = g.StartDate.AddDays(d)
	}
	return dates
}

// EndDate returns the last day in the horizon, or the start date when the
// horizon is empty.
func (g Grid) EndDate() core.Date {
	if g.HorizonDays <= 0 {
		return g.StartDate
	}
	return g.StartDate.AddDays(g.HorizonDays - 1)
}

// EmployeeCount returns the number of roster rows
func (g Grid) EmployeeCount() int {
	return len(g.Rows)
}
