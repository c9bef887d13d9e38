package analytics

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"goroster/domain/core"
	"goroster/domain/roster"
)

// Summary describes one generated roster: global counts, per-shift totals,
// the distribution of per-employee workday counts, and a day/night balance
// check. Shown on the result page and by the CLI.
type Summary struct {
	Employees   int       `json:"employees"`
	Days        int       `json:"days"`
	StartDate   core.Date `json:"start_date"`
	EndDate     core.Date `json:"end_date"`
	DayShifts   int       `json:"day_shifts"`
	NightShifts int       `json:"night_shifts"`
	WeekOffs    int       `json:"week_offs"`

	Workdays WorkdayStats `json:"workdays"`

	// BalanceP is the chi-square goodness-of-fit p-value of the observed
	// WORK-DAY/WORK-NIGHT split against a 50/50 expectation over working
	// cells. 1 when there are no working cells.
	BalanceP float64 `json:"balance_p"`
}

// WorkdayStats summarizes the per-employee count of working cells
// (WORK-DAY + WORK-NIGHT).
type WorkdayStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes the summary for a grid. It never fails on grids the
// generator produces; the error covers only degenerate inputs the stats
// library rejects (no employees).
func Summarize(grid roster.Grid) (Summary, error) {
	summary := Summary{
		Employees: grid.EmployeeCount(),
		Days:      grid.HorizonDays,
		StartDate: grid.StartDate,
		EndDate:   grid.EndDate(),
	}
	if summary.Days < 0 {
		summary.Days = 0
	}

	perEmployee := make([]float64, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		working := 0
		for _, cell := range row.Cells {
			switch cell.Shift {
			case roster.ShiftDay:
				summary.DayShifts++
				working++
			case roster.ShiftNight:
				summary.NightShifts++
				working++
			case roster.ShiftWeekOff:
				summary.WeekOffs++
			}
		}
		perEmployee = append(perEmployee, float64(working))
	}

	if len(perEmployee) > 0 {
		var err error
		if summary.Workdays, err = workdayStats(perEmployee); err != nil {
			return summary, err
		}
	}

	summary.BalanceP = balancePValue(summary.DayShifts, summary.NightShifts)
	return summary, nil
}

func workdayStats(data []float64) (WorkdayStats, error) {
	ws := WorkdayStats{}

	mean, err := stats.Mean(data)
	if err != nil {
		return ws, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return ws, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return ws, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return ws, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return ws, err
	}

	ws.Mean = mean
	ws.Median = median
	ws.Min = min
	ws.Max = max
	ws.StdDev = stdDev
	return ws, nil
}

// balancePValue runs a one-degree-of-freedom chi-square goodness-of-fit test
// of the observed day/night split against equal expected counts.
func balancePValue(dayShifts, nightShifts int) float64 {
	total := dayShifts + nightShifts
	if total == 0 {
		return 1
	}

	expected := float64(total) / 2
	dayDev := float64(dayShifts) - expected
	nightDev := float64(nightShifts) - expected
	chiSquare := (dayDev*dayDev + nightDev*nightDev) / expected

	dist := distuv.ChiSquared{K: 1}
	return 1 - dist.CDF(chiSquare)
}
