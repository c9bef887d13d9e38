package ports

import (
	"io"

	"goroster/domain/core"
	"goroster/domain/roster"
)

// GridExporterPort renders a roster grid into styled spreadsheet bytes.
type GridExporterPort interface {
	// Write renders the grid as a finished .xlsx document.
	Write(grid roster.Grid) ([]byte, error)

	// Filename derives the download filename from the roster start date.
	Filename(start core.Date) string
}

// GridCSVWriterPort streams a grid as plain CSV, uncolored, same header and
// row layout as the spreadsheet export.
type GridCSVWriterPort interface {
	Write(w io.Writer, grid roster.Grid) error
}
