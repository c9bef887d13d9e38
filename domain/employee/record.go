package employee

// DefaultDepartment is assigned when the input table has no department column
const DefaultDepartment = "Inbound"

// Record is one employee in the canonical list. The list's order is
// semantically significant: the roster generator's parity rules key off a
// record's position, not its identity, so reordering upstream changes
// every affected employee's off-days.
type Record struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// IsBlank reports whether both identity fields are empty. Rows like this
// carry no usable data and are dropped during normalization; rows with
// only one identity field populated are kept.
func (r Record) IsBlank() bool {
	return r.EmployeeID == "" && r.Name == ""
}
