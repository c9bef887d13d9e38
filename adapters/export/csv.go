package export

import (
	"encoding/csv"
	"io"

	"goroster/domain/roster"
	"goroster/internal/errors"
)

// CSVWriter streams a roster grid as plain CSV: same header and row layout
// as the spreadsheet export, no styling. Used by the CLI and the API's CSV
// endpoint.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write emits the grid to w
func (c *CSVWriter) Write(w io.Writer, grid roster.Grid) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headerValues(grid)); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, row := range grid.Rows {
		record := make([]string, 0, 3+len(row.Cells))
		record = append(record, row.Employee.EmployeeID, row.Employee.Name, row.Employee.Department)
		for _, cell := range row.Cells {
			record = append(record, string(cell.Shift))
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV output")
}
