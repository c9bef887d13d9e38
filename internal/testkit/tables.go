package testkit

import (
	"bytes"
	"encoding/csv"

	"goroster/domain/table"
)

// CleanTable builds a well-labeled table: recognized headers, one row per
// employee, in list order.
func (t *TestKit) CleanTable(n int) table.Raw {
	records := t.Employees(n)
	raw := table.Raw{
		Headers: []string{"Employee ID", "NAME", "Department", "Status"},
	}
	for _, rec := range records {
		raw.Rows = append(raw.Rows, []string{rec.EmployeeID, rec.Name, rec.Department, t.pick(statuses)})
	}
	return raw
}

// BannerTable builds a table whose declared header is a banner row; the real
// header sits in the first data row, the shape header repair has to detect.
func (t *TestKit) BannerTable(n int) table.Raw {
	clean := t.CleanTable(n)
	rows := [][]string{clean.Headers}
	rows = append(rows, clean.Rows...)
	return table.Raw{
		Headers: []string{"Inbound Staffing Sheet", "", "", ""},
		Rows:    rows,
	}
}

// GarbageColumnTable builds a table where recognized headers are mixed with
// spreadsheet artifacts ("Unnamed: 3", "nan", "2") and an unknown label.
func (t *TestKit) GarbageColumnTable(n int) table.Raw {
	records := t.Employees(n)
	raw := table.Raw{
		Headers: []string{"Employee ID", "Unnamed: 1", "NAME", "nan", "Department", "2", "Notes"},
	}
	for _, rec := range records {
		raw.Rows = append(raw.Rows, []string{
			rec.EmployeeID, "", rec.Name, "", rec.Department, "", "shift swap ok",
		})
	}
	return raw
}

// SixColumnTable builds a table with no recognizable labels and six columns
// laid out as Employee ID, User ID, NAME, Status, Department, WINS.
func (t *TestKit) SixColumnTable(n int) table.Raw {
	records := t.Employees(n)
	raw := table.Raw{
		Headers: []string{"col_a", "col_b", "col_c", "col_d", "col_e", "col_f"},
	}
	for _, rec := range records {
		raw.Rows = append(raw.Rows, []string{
			rec.EmployeeID, t.userID(), rec.Name, t.pick(statuses), rec.Department, t.wins(),
		})
	}
	return raw
}

// ThreeColumnTable builds a narrow unlabeled table: the positional
// last-resort layout Employee ID, NAME, Department.
func (t *TestKit) ThreeColumnTable(n int) table.Raw {
	records := t.Employees(n)
	raw := table.Raw{
		Headers: []string{"x", "y", "z"},
	}
	for _, rec := range records {
		raw.Rows = append(raw.Rows, []string{rec.EmployeeID, rec.Name, rec.Department})
	}
	return raw
}

// WithBlankIdentityRows appends rows with both identity cells blank (dropped
// by normalization) and one row with only the name blank (kept).
func (t *TestKit) WithBlankIdentityRows(raw table.Raw) table.Raw {
	width := raw.ColumnCount()
	blank := make([]string, width)
	halfBlank := make([]string, width)
	halfBlank[0] = "EMP9999"

	out := table.Raw{Headers: raw.Headers}
	out.Rows = append(out.Rows, raw.Rows...)
	out.Rows = append(out.Rows, blank, halfBlank, blank)
	return out
}

// SampleCSV renders a messy-but-normalizable sample sheet as CSV bytes, used
// by the CLI sample command and the UI demo flow.
func (t *TestKit) SampleCSV(n int) ([]byte, error) {
	raw := t.WithBlankIdentityRows(t.GarbageColumnTable(n))

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(raw.Headers); err != nil {
		return nil, err
	}
	for _, row := range raw.Rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
