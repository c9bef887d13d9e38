package tabular

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"goroster/domain/table"
	"goroster/internal/errors"
)

// SupportedExtensions lists the upload formats the reader accepts
var SupportedExtensions = []string{".csv", ".xlsx"}

// Reader decodes CSV and Excel uploads into raw tables. The first source row
// becomes the declared header verbatim (trimmed); everything else is left to
// the normalizer. All failures carry the DECODE_ERROR code so the UI can
// tell an unreadable file apart from a table missing required columns.
type Reader struct{}

// NewReader creates a new table reader
func NewReader() *Reader {
	return &Reader{}
}

// Supported reports whether the filename's extension is a format the reader
// can decode.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Decode reads a table from src, picking the format from the filename's
// extension.
func (r *Reader) Decode(src io.Reader, filename string) (table.Raw, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return r.decodeCSV(src)
	case ".xlsx":
		return r.decodeExcel(src)
	default:
		return table.Raw{}, errors.DecodeError("unsupported file type: "+ext, nil)
	}
}

// DecodeFile reads a table from a path on disk
func (r *Reader) DecodeFile(path string) (table.Raw, error) {
	file, err := os.Open(path)
	if err != nil {
		return table.Raw{}, errors.DecodeError("failed to open file: "+path, err)
	}
	defer file.Close()

	return r.Decode(file, path)
}

// decodeCSV reads CSV bytes. Lazy quotes and variable field counts are
// allowed: messy exports are the normal case, not an error.
func (r *Reader) decodeCSV(src io.Reader) (table.Raw, error) {
	readStart := time.Now()

	reader := csv.NewReader(src)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return table.Raw{}, errors.DecodeError("failed to read CSV data", err)
	}
	if len(rows) == 0 {
		return table.Raw{}, errors.DecodeError("CSV file has no rows", nil)
	}

	readTime := time.Since(readStart)
	log.Printf("[TableReader] CSV read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	return buildTable(rows), nil
}

// decodeExcel reads the first sheet of an .xlsx workbook. Numeric cells
// arrive as excelize's formatted strings.
func (r *Reader) decodeExcel(src io.Reader) (table.Raw, error) {
	readStart := time.Now()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return table.Raw{}, errors.DecodeError("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Raw{}, errors.DecodeError("Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Raw{}, errors.DecodeError("failed to read sheet "+sheets[0], err)
	}
	if len(rows) == 0 {
		return table.Raw{}, errors.DecodeError("Excel sheet has no rows", nil)
	}

	readTime := time.Since(readStart)
	log.Printf("[TableReader] Excel sheet %q read in %.2fms (%d rows)", sheets[0], float64(readTime.Nanoseconds())/1e6, len(rows))

	return buildTable(rows), nil
}

// buildTable splits raw rows into declared header plus data rows. Header
// cells are trimmed; data cells stay verbatim (the table model trims on
// access) so the normalizer sees what the file contained.
func buildTable(rows [][]string) table.Raw {
	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cell)
	}

	return table.Raw{
		Headers: headers,
		Rows:    rows[1:],
	}
}
