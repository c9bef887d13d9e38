package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"goroster/internal/errors"
)

// TestDecodeCSV tests CSV decoding: first row becomes the declared header,
// ragged rows are preserved.
func TestDecodeCSV(t *testing.T) {
	csvData := "Employee ID,NAME,Department\nE1,Alice,Inbound\nE2,Bob\nE3,Cara,Returns,extra\n"

	raw, err := NewReader().Decode(strings.NewReader(csvData), "staff.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedHeaders := []string{"Employee ID", "NAME", "Department"}
	if len(raw.Headers) != len(expectedHeaders) {
		t.Fatalf("expected %d headers, got %d", len(expectedHeaders), len(raw.Headers))
	}
	for i, header := range expectedHeaders {
		if raw.Headers[i] != header {
			t.Errorf("header %d: expected %q, got %q", i, header, raw.Headers[i])
		}
	}

	if len(raw.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(raw.Rows))
	}
	if len(raw.Rows[1]) != 2 {
		t.Errorf("short row must stay short, got %d cells", len(raw.Rows[1]))
	}
	if len(raw.Rows[2]) != 4 {
		t.Errorf("long row must stay long, got %d cells", len(raw.Rows[2]))
	}
}

// TestDecodeExcelMatchesCSV tests that a workbook with the same content as a
// CSV decodes into the same table.
func TestDecodeExcelMatchesCSV(t *testing.T) {
	content := [][]string{
		{"Employee ID", "NAME", "Department"},
		{"E1", "Alice", "Inbound"},
		{"E2", "Bob", "Returns"},
	}

	f := excelize.NewFile()
	for rowIdx, row := range content {
		for colIdx, value := range row {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				t.Fatalf("coordinates: %v", err)
			}
			if err := f.SetCellValue("Sheet1", ref, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	reader := NewReader()
	fromExcel, err := reader.Decode(bytes.NewReader(buf.Bytes()), "staff.xlsx")
	if err != nil {
		t.Fatalf("excel decode: %v", err)
	}

	var csvData strings.Builder
	for _, row := range content {
		csvData.WriteString(strings.Join(row, ","))
		csvData.WriteByte('\n')
	}
	fromCSV, err := reader.Decode(strings.NewReader(csvData.String()), "staff.csv")
	if err != nil {
		t.Fatalf("csv decode: %v", err)
	}

	if len(fromExcel.Headers) != len(fromCSV.Headers) || len(fromExcel.Rows) != len(fromCSV.Rows) {
		t.Fatalf("shape mismatch: excel %dx%d vs csv %dx%d",
			len(fromExcel.Headers), len(fromExcel.Rows), len(fromCSV.Headers), len(fromCSV.Rows))
	}
	for i := range fromCSV.Headers {
		if fromExcel.Headers[i] != fromCSV.Headers[i] {
			t.Errorf("header %d: %q vs %q", i, fromExcel.Headers[i], fromCSV.Headers[i])
		}
	}
	for r := range fromCSV.Rows {
		for c := range fromCSV.Rows[r] {
			if fromExcel.Cell(r, c) != fromCSV.Cell(r, c) {
				t.Errorf("cell (%d,%d): %q vs %q", r, c, fromExcel.Cell(r, c), fromCSV.Cell(r, c))
			}
		}
	}
}

// TestDecodeFailuresAreDecodeErrors tests that every failure carries the
// DECODE_ERROR code, distinct from normalization failures.
func TestDecodeFailuresAreDecodeErrors(t *testing.T) {
	reader := NewReader()

	tests := []struct {
		name     string
		data     string
		filename string
	}{
		{"unsupported extension", "a,b\n1,2\n", "staff.pdf"},
		{"no extension", "a,b\n1,2\n", "staff"},
		{"empty csv", "", "staff.csv"},
		{"corrupt xlsx", "this is not a zip archive", "staff.xlsx"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := reader.Decode(strings.NewReader(test.data), test.filename)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.GetCode(err) != errors.CodeDecodeError {
				t.Errorf("expected code %s, got %s", errors.CodeDecodeError, errors.GetCode(err))
			}
		})
	}
}

// TestDecodeFileMissing tests the missing-file path
func TestDecodeFileMissing(t *testing.T) {
	_, err := NewReader().DecodeFile("/nonexistent/staff.csv")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.GetCode(err) != errors.CodeDecodeError {
		t.Errorf("expected code %s, got %s", errors.CodeDecodeError, errors.GetCode(err))
	}
}

// TestSupported tests the extension allowlist
func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"staff.csv", true},
		{"staff.xlsx", true},
		{"STAFF.CSV", true},
		{"staff.xls", false},
		{"staff.pdf", false},
		{"staff", false},
	}

	for _, test := range tests {
		if got := Supported(test.filename); got != test.expected {
			t.Errorf("Supported(%q): expected %v, got %v", test.filename, test.expected, got)
		}
	}
}

// TestDecodeCSVHeaderOnly tests that a header-only file decodes to a table
// with zero data rows.
func TestDecodeCSVHeaderOnly(t *testing.T) {
	raw, err := NewReader().Decode(strings.NewReader("Employee ID,NAME\n"), "staff.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.RowCount() != 0 {
		t.Errorf("expected 0 rows, got %d", raw.RowCount())
	}
	if raw.ColumnCount() != 2 {
		t.Errorf("expected 2 columns, got %d", raw.ColumnCount())
	}
}
