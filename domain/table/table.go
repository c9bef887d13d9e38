package table

import "strings"

// Raw represents an untrusted tabular input: an ordered header list plus
// ordered rows of string cells. Headers may be blank, duplicated, or
// garbage; rows may be shorter or longer than the header list. Decoders
// produce it, the employee normalizer consumes it; nothing in between
// assumes any invariant.
type Raw struct {
	Headers []string
	Rows    [][]string
}

// ColumnCount returns the number of declared columns
func (r Raw) ColumnCount() int {
	return len(r.Headers)
}

// RowCount returns the number of data rows
func (r Raw) RowCount() int {
	return len(r.Rows)
}

// IsEmpty reports whether the table has neither columns nor rows
func (r Raw) IsEmpty() bool {
	return len(r.Headers) == 0 && len(r.Rows) == 0
}

// Cell returns the trimmed cell at (row, col), or "" when the row is
// shorter than col. Out-of-range rows also yield "".
func (r Raw) Cell(row, col int) string {
	if row < 0 || row >= len(r.Rows) {
		return ""
	}
	cells := r.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// PromoteFirstRow returns a copy of the table whose header list is the
// first data row (trimmed) and whose rows are the remaining data rows.
// Used by header repair when the declared header turns out to be a
// banner/title row. A table with no rows is returned unchanged.
func (r Raw) PromoteFirstRow() Raw {
	if len(r.Rows) == 0 {
		return r
	}
	promoted := make([]string, len(r.Rows[0]))
	for i, cell := range r.Rows[0] {
		promoted[i] = strings.TrimSpace(cell)
	}
	return Raw{
		Headers: promoted,
		Rows:    r.Rows[1:],
	}
}
