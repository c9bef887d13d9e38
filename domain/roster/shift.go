package roster

import "time"

// Shift is a single-cell schedule label
type Shift string

const (
	ShiftDay     Shift = "WORK-DAY"
	ShiftNight   Shift = "WORK-NIGHT"
	ShiftWeekOff Shift = "WEEK-OFF"
)

// DefaultHorizonDays is the roster length when the caller does not choose one
const DefaultHorizonDays = 30

// weekOffDays maps row parity to the weekdays that are off. Even rows
// (0-based) rest on the weekend, odd rows mid-week.
var weekOffDays = map[bool][]time.Weekday{
	true:  {time.Saturday, time.Sunday},
	false: {time.Tuesday, time.Wednesday},
}
