package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"goroster/app"
	"goroster/domain/core"
	"goroster/domain/roster"
	"goroster/internal/errors"
	"goroster/internal/testkit"
	"goroster/ports"
)

// Preview caps: the result page shows at most this many day columns and
// employee rows; the download has everything.
const (
	previewMaxDays = 14
	previewMaxRows = 50
)

// handleIndex renders the upload form. The start-date default is the first
// day of the month after now, a UI convenience only; the core always gets
// the date explicitly.
func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, "")
}

func (s *Server) renderIndex(c *gin.Context, errorMessage string) {
	status := http.StatusOK
	if errorMessage != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "index.html", gin.H{
		"DefaultStart":   core.NextMonthStart(time.Now()).String(),
		"DefaultHorizon": s.config.Roster.HorizonDays,
		"Error":          errorMessage,
	})
}

// handleCreateRoster accepts the multipart upload and runs the pipeline
func (s *Server) handleCreateRoster(c *gin.Context) {
	fileHeader, err := c.FormFile("roster")
	if err != nil {
		s.renderIndex(c, "no file uploaded")
		return
	}

	start, horizonDays, err := s.parseRosterParams(c.PostForm("start"), c.PostForm("horizon"))
	if err != nil {
		s.renderIndex(c, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[handleCreateRoster] Failed to open upload %q: %v", fileHeader.Filename, err)
		s.renderIndex(c, "could not read uploaded file")
		return
	}
	defer file.Close()

	result, err := s.service.Build(c.Request.Context(), app.BuildRequest{
		Filename:    fileHeader.Filename,
		Source:      file,
		Size:        fileHeader.Size,
		Start:       start,
		HorizonDays: horizonDays,
	})
	if err != nil {
		log.Printf("[handleCreateRoster] Build failed for %q: %v", fileHeader.Filename, err)
		s.renderIndex(c, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/roster/"+result.ID.String())
}

// handleShowRoster renders the preview and summary for one result
func (s *Server) handleShowRoster(c *gin.Context) {
	result, ok := s.lookupResult(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Result":   result,
		"Summary":  result.Summary,
		"Preview":  buildPreview(result.Grid),
		"Filename": s.exporter.Filename(result.Grid.StartDate),
	})
}

// handleDownload streams the styled workbook as an attachment
func (s *Server) handleDownload(c *gin.Context) {
	result, ok := s.lookupResult(c)
	if !ok {
		return
	}

	workbook, err := s.exporter.Write(result.Grid)
	if err != nil {
		log.Printf("[handleDownload] Export failed for %s: %v", result.ID, err)
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	filename := s.exporter.Filename(result.Grid.StartDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// handleExportCSV streams the uncolored CSV variant
func (s *Server) handleExportCSV(c *gin.Context) {
	result, ok := s.lookupResult(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := s.csvWriter.Write(&buf, result.Grid); err != nil {
		log.Printf("[handleExportCSV] Export failed for %s: %v", result.ID, err)
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="roster.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// handleDemo builds a roster from a generated sample table so the flow is
// explorable without a file.
func (s *Server) handleDemo(c *gin.Context) {
	kit := testkit.NewTestKit(demoSeed)
	raw := kit.WithBlankIdentityRows(kit.GarbageColumnTable(12))

	result, err := s.service.BuildFromTable(c.Request.Context(), raw, "demo", core.NextMonthStart(time.Now()), s.config.Roster.HorizonDays)
	if err != nil {
		log.Printf("[handleDemo] Demo build failed: %v", err)
		s.renderIndex(c, "demo build failed")
		return
	}

	c.Redirect(http.StatusSeeOther, "/roster/"+result.ID.String())
}

// handleHelp renders the embedded usage guide
func (s *Server) handleHelp(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		c.String(http.StatusInternalServerError, "help unavailable")
		return
	}

	rendered := markdown.ToHTML(source, nil, nil)
	c.HTML(http.StatusOK, "help.html", gin.H{
		"Content": template.HTML(rendered),
	})
}

func (s *Server) lookupResult(c *gin.Context) (*ports.RosterResult, bool) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid result id")
		return nil, false
	}

	result, err := s.service.Get(id)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			c.String(http.StatusNotFound, "roster not found or expired")
		} else {
			c.String(http.StatusInternalServerError, "lookup failed")
		}
		return nil, false
	}
	return result, true
}

func (s *Server) parseRosterParams(startValue, horizonValue string) (core.Date, int, error) {
	start := core.NextMonthStart(time.Now())
	if startValue != "" {
		parsed, err := core.ParseDate(startValue)
		if err != nil {
			return core.Date{}, 0, fmt.Errorf("invalid start date %q (use YYYY-MM-DD)", startValue)
		}
		start = parsed
	}

	horizonDays := s.config.Roster.HorizonDays
	if horizonValue != "" {
		if _, err := fmt.Sscanf(horizonValue, "%d", &horizonDays); err != nil {
			return core.Date{}, 0, fmt.Errorf("invalid horizon %q", horizonValue)
		}
	}

	return start, horizonDays, nil
}

// Preview is the capped grid slice rendered on the result page
type Preview struct {
	DateHeaders []string
	Rows        []PreviewRow
	DaysClipped bool
	RowsClipped bool
}

// PreviewRow is one employee's visible slice of cells
type PreviewRow struct {
	EmployeeID string
	Name       string
	Department string
	Shifts     []string
}

func buildPreview(grid roster.Grid) Preview {
	preview := Preview{}

	dates := grid.Dates()
	if len(dates) > previewMaxDays {
		dates = dates[:previewMaxDays]
		preview.DaysClipped = true
	}
	for _, date := range dates {
		preview.DateHeaders = append(preview.DateHeaders, date.ColumnHeader())
	}

	rows := grid.Rows
	if len(rows) > previewMaxRows {
		rows = rows[:previewMaxRows]
		preview.RowsClipped = true
	}
	for _, row := range rows {
		previewRow := PreviewRow{
			EmployeeID: row.Employee.EmployeeID,
			Name:       row.Employee.Name,
			Department: row.Employee.Department,
		}
		cells := row.Cells
		if len(cells) > previewMaxDays {
			cells = cells[:previewMaxDays]
		}
		for _, cell := range cells {
			previewRow.Shifts = append(previewRow.Shifts, string(cell.Shift))
		}
		preview.Rows = append(preview.Rows, previewRow)
	}

	return preview
}
