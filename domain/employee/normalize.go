package employee

import (
	"fmt"
	"strings"

	"goroster/domain/core"
	"goroster/domain/table"
)

// headerMarker is scanned for in the first data row to detect tables where a
// banner/title row was read as the header and the real header slid down one.
const headerMarker = string(FieldEmployeeID)

// Strategy names, reported by Resolve for diagnostics.
const (
	StrategyDeclaredHeader = "declared-header"
	StrategyHeaderRepair   = "header-repair"
	StrategySixColumn      = "six-column-positional"
	StrategyThreeColumn    = "three-column-positional"
)

// MissingColumnError reports that a required semantic column could not be
// resolved by any header strategy. It matches core.ErrMissingColumn under
// errors.Is.
type MissingColumnError struct {
	Column Field
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return core.ErrMissingColumn
}

// Resolution is the outcome of header resolution: which strategy succeeded,
// which semantic fields map to which column indices, and the data rows left
// after any header promotion.
type Resolution struct {
	Strategy string
	Columns  map[Field]int
	Rows     [][]string
}

// HasField reports whether the resolution bound the given semantic field.
func (r Resolution) HasField(f Field) bool {
	_, ok := r.Columns[f]
	return ok
}

// resolved reports whether both required identity fields were bound.
func (r Resolution) resolved() bool {
	return r.HasField(FieldEmployeeID) && r.HasField(FieldName)
}

// Normalize turns an untrusted raw table into the canonical employee list.
// The list's order equals the surviving input row order; downstream shift
// assignment keys off that order. The only failure mode is a
// *MissingColumnError when no header strategy can bind both Employee ID and
// NAME.
func Normalize(raw table.Raw) ([]Record, error) {
	res, err := Resolve(raw)
	if err != nil {
		return nil, err
	}
	return Project(res), nil
}

// Resolve runs the ordered header strategies until one binds both required
// fields. The order is: declared header, header repair (promote the first
// data row when it carries the Employee ID marker), six-column positional
// layout (tables with at least six columns), three-column positional
// fallback. Named matching always beats positional layouts, and the
// six-column layout is skipped entirely for tables with three to five
// columns.
func Resolve(raw table.Raw) (Resolution, error) {
	declared := classifyHeaders(raw.Headers)
	if declared.resolved() {
		declared.Strategy = StrategyDeclaredHeader
		declared.Rows = raw.Rows
		return declared, nil
	}

	// Header repair: only when the declared header failed, so a valid
	// declared header always wins over a marker-bearing first data row.
	working := raw
	repaired := Resolution{}
	if firstRowHasMarker(raw) {
		working = raw.PromoteFirstRow()
		repaired = classifyHeaders(working.Headers)
		if repaired.resolved() {
			repaired.Strategy = StrategyHeaderRepair
			repaired.Rows = working.Rows
			return repaired, nil
		}
	}

	// Positional layouts apply to the repaired table when repair ran, so a
	// promoted banner row is not mistaken for data.
	width := working.ColumnCount()
	if width >= len(sixColumnLayout) {
		res := positional(sixColumnLayout)
		res.Strategy = StrategySixColumn
		res.Rows = working.Rows
		return res, nil
	}
	if width >= len(threeColumnLayout) {
		res := positional(threeColumnLayout)
		res.Strategy = StrategyThreeColumn
		res.Rows = working.Rows
		return res, nil
	}

	return Resolution{}, &MissingColumnError{Column: firstMissing(declared, repaired)}
}

// classifyHeaders runs the label classifier over a header list. When a known
// field appears more than once, the first occurrence wins.
func classifyHeaders(headers []string) Resolution {
	res := Resolution{Columns: make(map[Field]int)}
	for i, label := range headers {
		field, class := Classify(label)
		if class != LabelKeep {
			continue
		}
		if _, seen := res.Columns[field]; seen {
			continue
		}
		res.Columns[field] = i
	}
	return res
}

// firstRowHasMarker reports whether the first data row looks like a
// displaced header: a cell equal to the marker, or the marker appearing as a
// substring of the joined stringified row.
func firstRowHasMarker(raw table.Raw) bool {
	if len(raw.Rows) == 0 {
		return false
	}
	for _, cell := range raw.Rows[0] {
		if strings.TrimSpace(cell) == headerMarker {
			return true
		}
	}
	joined := strings.Join(raw.Rows[0], " ")
	return strings.Contains(joined, headerMarker)
}

func positional(layout []Field) Resolution {
	res := Resolution{Columns: make(map[Field]int)}
	for i, field := range layout {
		res.Columns[field] = i
	}
	return res
}

// firstMissing picks the error column: Employee ID is checked before NAME,
// and the best partial resolution (declared or repaired) counts.
func firstMissing(attempts ...Resolution) Field {
	for _, res := range attempts {
		if res.HasField(FieldEmployeeID) {
			return FieldName
		}
	}
	return FieldEmployeeID
}

// Project builds the canonical record list from a resolution: cells are
// trimmed, Department defaults when the input had no department column, and
// rows where both identity fields are blank are dropped. Rows with exactly
// one identity field populated are kept as-is.
func Project(res Resolution) []Record {
	idCol := res.Columns[FieldEmployeeID]
	nameCol := res.Columns[FieldName]
	deptCol, hasDept := res.Columns[FieldDepartment]

	records := make([]Record, 0, len(res.Rows))
	for _, row := range res.Rows {
		rec := Record{
			EmployeeID: cellAt(row, idCol),
			Name:       cellAt(row, nameCol),
		}
		if hasDept {
			rec.Department = cellAt(row, deptCol)
		} else {
			rec.Department = DefaultDepartment
		}
		if rec.IsBlank() {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
