package roster

import (
	"goroster/domain/core"
	"goroster/domain/employee"
)

// ShiftFor computes the shift for one (row position, date) pair. It is a
// pure function of the row's parity, the date's weekday and the date's
// day-of-month: week-off weekdays come from row parity, and working days
// split into WORK-DAY on even days of the month, WORK-NIGHT on odd. No
// state carries across cells.
//
// The row index is the employee's absolute position in the canonical list,
// so any upstream reordering changes which employees get which off-days.
func ShiftFor(rowIdx int, date core.Date) Shift {
	evenRow := rowIdx%2 == 0
	weekday := date.Weekday()

	for _, off := range weekOffDays[evenRow] {
		if weekday == off {
			return ShiftWeekOff
		}
	}

	// Day-of-month parity uses each date's own month, so horizons spanning
	// month boundaries restart the alternation with the new month's days.
	if date.Day()%2 == 0 {
		return ShiftDay
	}
	return ShiftNight
}

// Generate builds the roster grid for the given employees, start date and
// horizon. It is total: a non-positive horizon yields one row per employee
// with zero cells, and any well-formed employee list produces a grid. Row
// order equals input order.
func Generate(employees []employee.Record, start core.Date, horizonDays int) Grid {
	grid := Grid{
		StartDate:   start,
		HorizonDays: horizonDays,
		Rows:        make([]Row, len(employees)),
	}

	for idx, emp := range employees {
		row := Row{Employee: emp}
		if horizonDays > 0 {
			row.Cells = make([]Cell, horizonDays)
			for d := 0; d < horizonDays; d++ {
				date := start.AddDays(d)
				row.Cells[d] = Cell{Date: date, Shift: ShiftFor(idx, date)}
			}
		}
		grid.Rows[idx] = row
	}

	return grid
}
