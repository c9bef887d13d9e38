package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"goroster/domain/roster"
)

// TestCSVWriterLayout tests that the CSV export mirrors the workbook layout
func TestCSVWriterLayout(t *testing.T) {
	grid := sampleGrid(t)

	var buf bytes.Buffer
	if err := NewCSVWriter().Write(&buf, grid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Employee ID" || records[0][3] != "Fri 01-Mar" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "E1" || records[1][4] != string(roster.ShiftWeekOff) {
		t.Errorf("unexpected first data row: %v", records[1])
	}
	for _, record := range records[1:] {
		if len(record) != 10 {
			t.Errorf("expected 10 fields per row, got %d", len(record))
		}
	}
}
