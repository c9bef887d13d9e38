package roster

import (
	"strings"

	"goroster/domain/core"
)

// Fingerprint hashes a canonical serialization of the grid: start date,
// horizon, then each row's employee identity and cell labels in order. Equal
// inputs always produce equal fingerprints, which is what the determinism
// checks and the result manifest rely on.
func Fingerprint(grid Grid) core.Hash {
	var b strings.Builder
	b.WriteString(grid.StartDate.String())
	b.WriteByte('|')
	b.WriteString(grid.EndDate().String())

	for _, row := range grid.Rows {
		b.WriteByte('\n')
		b.WriteString(row.Employee.EmployeeID)
		b.WriteByte('|')
		b.WriteString(row.Employee.Name)
		b.WriteByte('|')
		b.WriteString(row.Employee.Department)
		for _, cell := range row.Cells {
			b.WriteByte('|')
			b.WriteString(string(cell.Shift))
		}
	}

	return core.NewHash([]byte(b.String()))
}
