package export

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"goroster/domain/core"
	"goroster/domain/roster"
	"goroster/internal/errors"
)

const sheetName = "Roster"

// maxColumnWidth caps auto-sized column widths
const maxColumnWidth = 20

// Cell fill colors, keyed by shift value. The header gets its own fill.
const (
	headerFillColor  = "4472C4"
	dayFillColor     = "E7E6E6"
	nightFillColor   = "FFF2CC"
	weekOffFillColor = "FFD966"
)

var shiftFills = map[roster.Shift]string{
	roster.ShiftDay:     dayFillColor,
	roster.ShiftNight:   nightFillColor,
	roster.ShiftWeekOff: weekOffFillColor,
}

// ExcelWriter renders a roster grid into a styled .xlsx workbook: one header
// row (identity columns then one column per day), one row per employee, cell
// fills keyed by shift value.
type ExcelWriter struct{}

// NewExcelWriter creates a new Excel writer
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// Filename derives the download filename from the roster start date,
// e.g. Roster_March_2024.xlsx.
func (w *ExcelWriter) Filename(start core.Date) string {
	return fmt.Sprintf("Roster_%s.xlsx", start.MonthYear())
}

// Write renders the grid and returns the finished workbook bytes
func (w *ExcelWriter) Write(grid roster.Grid) ([]byte, error) {
	buildStart := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name roster sheet")
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register cell styles")
	}

	headers := headerValues(grid)
	for col, value := range headers {
		if err := setCell(f, col+1, 1, value, styles.header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range grid.Rows {
		excelRow := rowIdx + 2
		identity := []string{row.Employee.EmployeeID, row.Employee.Name, row.Employee.Department}
		for col, value := range identity {
			if err := setCell(f, col+1, excelRow, value, styles.body); err != nil {
				return nil, err
			}
		}
		for cellIdx, cell := range row.Cells {
			if err := setCell(f, len(identity)+cellIdx+1, excelRow, string(cell.Shift), styles.shifts[cell.Shift]); err != nil {
				return nil, err
			}
		}
	}

	if err := sizeColumns(f, grid, headers); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	buildTime := time.Since(buildStart)
	log.Printf("[ExcelWriter] Workbook built in %.2fms (%d employees, %d days)",
		float64(buildTime.Nanoseconds())/1e6, grid.EmployeeCount(), grid.HorizonDays)

	return buf.Bytes(), nil
}

// headerValues builds the header row: identity columns then one column per
// horizon day formatted like "Mon 03-Mar".
func headerValues(grid roster.Grid) []string {
	headers := []string{"Employee ID", "NAME", "Department"}
	for _, date := range grid.Dates() {
		headers = append(headers, date.ColumnHeader())
	}
	return headers
}

func setCell(f *excelize.File, col, row int, value string, styleID int) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(err, "invalid cell coordinates")
	}
	if err := f.SetCellValue(sheetName, ref, value); err != nil {
		return errors.Wrapf(err, "failed to set cell %s", ref)
	}
	if err := f.SetCellStyle(sheetName, ref, ref, styleID); err != nil {
		return errors.Wrapf(err, "failed to style cell %s", ref)
	}
	return nil
}

// sizeColumns widens each column to its longest cell plus padding, capped.
func sizeColumns(f *excelize.File, grid roster.Grid, headers []string) error {
	for col, header := range headers {
		longest := len(header)
		for _, row := range grid.Rows {
			var value string
			switch col {
			case 0:
				value = row.Employee.EmployeeID
			case 1:
				value = row.Employee.Name
			case 2:
				value = row.Employee.Department
			default:
				if cellIdx := col - 3; cellIdx < len(row.Cells) {
					value = string(row.Cells[cellIdx].Shift)
				}
			}
			if len(value) > longest {
				longest = len(value)
			}
		}

		width := float64(longest + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return errors.Wrap(err, "invalid column number")
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return errors.Wrapf(err, "failed to size column %s", name)
		}
	}
	return nil
}

// styleSet holds the registered style IDs for one workbook
type styleSet struct {
	header int
	body   int
	shifts map[roster.Shift]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	thinBorders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: centered,
		Border:    thinBorders,
	})
	if err != nil {
		return nil, err
	}

	body, err := f.NewStyle(&excelize.Style{
		Alignment: centered,
		Border:    thinBorders,
	})
	if err != nil {
		return nil, err
	}

	shifts := make(map[roster.Shift]int, len(shiftFills))
	for shift, fill := range shiftFills {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Alignment: centered,
			Border:    thinBorders,
		})
		if err != nil {
			return nil, err
		}
		shifts[shift] = styleID
	}

	return &styleSet{header: header, body: body, shifts: shifts}, nil
}
