package employee

import "strings"

// Field is a semantic column name the normalizer can resolve
type Field string

// Known semantic columns. Only EmployeeID, Name and Department survive into
// the canonical record; the others participate in header resolution and are
// projected away.
const (
	FieldEmployeeID Field = "Employee ID"
	FieldUserID     Field = "User ID"
	FieldName       Field = "NAME"
	FieldStatus     Field = "Status"
	FieldDepartment Field = "Department"
	FieldWins       Field = "WINS"
)

// LabelClass is the outcome of classifying one header label
type LabelClass int

const (
	// LabelUnknown means the label is neither recognized nor garbage
	LabelUnknown LabelClass = iota
	// LabelDiscard means the label is a known garbage pattern
	LabelDiscard
	// LabelKeep means the label matched a known semantic column
	LabelKeep
)

// sixColumnLayout is the assumed order of the first six columns when no
// header label can be matched by name.
var sixColumnLayout = []Field{
	FieldEmployeeID,
	FieldUserID,
	FieldName,
	FieldStatus,
	FieldDepartment,
	FieldWins,
}

// threeColumnLayout is the last-resort positional labeling for narrow tables.
var threeColumnLayout = []Field{
	FieldEmployeeID,
	FieldName,
	FieldDepartment,
}

var knownFields = map[string]Field{
	string(FieldEmployeeID): FieldEmployeeID,
	string(FieldUserID):     FieldUserID,
	string(FieldName):       FieldName,
	string(FieldStatus):     FieldStatus,
	string(FieldDepartment): FieldDepartment,
	string(FieldWins):       FieldWins,
}

// Classify decides what to do with a single header label. Garbage patterns
// ("2", "nan", "Unnamed", "Unnamed: N" spreadsheet artifacts) are discarded,
// exact matches of the known semantic names (after trimming) are kept, and
// everything else is unknown. The decision depends only on the label, never
// on row data.
func Classify(label string) (Field, LabelClass) {
	trimmed := strings.TrimSpace(label)

	if trimmed == "2" || trimmed == "nan" || trimmed == "Unnamed" || strings.HasPrefix(trimmed, "Unnamed:") {
		return "", LabelDiscard
	}

	if field, ok := knownFields[trimmed]; ok {
		return field, LabelKeep
	}

	return "", LabelUnknown
}
