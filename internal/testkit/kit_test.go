package testkit

import (
	"bytes"
	"testing"

	"goroster/domain/employee"
)

// TestDeterminism tests that equal seeds produce identical fixtures
func TestDeterminism(t *testing.T) {
	first := NewTestKit(42).Employees(20)
	second := NewTestKit(42).Employees(20)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs across identically-seeded kits: %+v vs %+v", i, first[i], second[i])
		}
	}

	firstCSV, err := NewTestKit(7).SampleCSV(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondCSV, err := NewTestKit(7).SampleCSV(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(firstCSV, secondCSV) {
		t.Error("SampleCSV must be deterministic for a fixed seed")
	}
}

// TestTableShapesNormalize tests that every generated messy shape resolves
// through the expected strategy.
func TestTableShapesNormalize(t *testing.T) {
	kit := NewTestKit(42)

	shapes := []struct {
		name     string
		strategy string
		records  int
	}{
		{"clean", employee.StrategyDeclaredHeader, 8},
		{"banner", employee.StrategyHeaderRepair, 8},
		{"garbage columns", employee.StrategyDeclaredHeader, 8},
		{"six column", employee.StrategySixColumn, 8},
		{"three column", employee.StrategyThreeColumn, 8},
	}

	for _, shape := range shapes {
		t.Run(shape.name, func(t *testing.T) {
			var raw = kit.CleanTable(shape.records)
			switch shape.name {
			case "banner":
				raw = kit.BannerTable(shape.records)
			case "garbage columns":
				raw = kit.GarbageColumnTable(shape.records)
			case "six column":
				raw = kit.SixColumnTable(shape.records)
			case "three column":
				raw = kit.ThreeColumnTable(shape.records)
			}

			res, err := employee.Resolve(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Strategy != shape.strategy {
				t.Errorf("expected strategy %q, got %q", shape.strategy, res.Strategy)
			}

			records := employee.Project(res)
			if len(records) != shape.records {
				t.Errorf("expected %d records, got %d", shape.records, len(records))
			}
		})
	}
}

// TestBlankIdentityRows tests that appended blank rows are dropped while the
// half-blank row survives.
func TestBlankIdentityRows(t *testing.T) {
	kit := NewTestKit(42)
	raw := kit.WithBlankIdentityRows(kit.CleanTable(5))

	records, err := employee.Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5 originals plus the ID-only row; the two fully-blank rows drop
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	last := records[5]
	if last.EmployeeID != "EMP9999" || last.Name != "" {
		t.Errorf("expected trailing half-blank record, got %+v", last)
	}
}
