package api

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"goroster/app"
	"goroster/domain/core"
	"goroster/domain/employee"
	"goroster/domain/roster"
	"goroster/internal/errors"
)

// errorEnvelope is the JSON shape of every API failure
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// generateRequest is the JSON body of POST /rosters for callers that already
// hold a canonical employee list.
type generateRequest struct {
	Employees   []employee.Record `json:"employees"`
	Start       string            `json:"start"`
	HorizonDays *int              `json:"horizon_days,omitempty"`
}

// handleHealth is the liveness probe
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNormalize decodes and normalizes an upload, returning the canonical
// employee list without generating a roster.
func (a *App) handleNormalize(w http.ResponseWriter, r *http.Request) {
	file, header, err := a.uploadFile(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	raw, err := a.service.Decode(file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	resolution, err := employee.Resolve(raw)
	if err != nil {
		writeError(w, &errors.AppError{Code: errors.CodeValidationError, Message: "normalization failed", Cause: err})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategy":  resolution.Strategy,
		"employees": employee.Project(resolution),
	})
}

// handleCreateRoster runs the full pipeline. Multipart uploads carry the
// same fields as the UI form; JSON bodies carry a pre-normalized employee
// list.
func (a *App) handleCreateRoster(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		a.createFromJSON(w, r)
		return
	}
	a.createFromUpload(w, r)
}

func (a *App) createFromUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := a.uploadFile(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	start, horizonDays, err := a.rosterParams(r.FormValue("start"), r.FormValue("horizon"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := a.service.Build(r.Context(), app.BuildRequest{
		Filename:    header.Filename,
		Source:      file,
		Size:        header.Size,
		Start:       start,
		HorizonDays: horizonDays,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (a *App) createFromJSON(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("invalid JSON body: "+err.Error()))
		return
	}

	start, horizonDays, err := a.rosterParams(req.Start, "")
	if err != nil {
		writeError(w, err)
		return
	}
	if req.HorizonDays != nil {
		horizonDays = *req.HorizonDays
	}

	result, err := a.service.BuildFromEmployees(r.Context(), req.Employees, "api", start, horizonDays)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// handleGetRoster returns a stored result by ID
func (a *App) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseResultID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidInput("invalid result id"))
		return
	}

	result, err := a.service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *App) uploadFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(a.config.Upload.MaxUploadBytes()); err != nil {
		writeError(w, errors.InvalidInput("invalid multipart form: "+err.Error()))
		return nil, nil, err
	}

	file, header, err := r.FormFile("roster")
	if err != nil {
		writeError(w, errors.InvalidInput("missing file field \"roster\""))
		return nil, nil, err
	}
	return file, header, nil
}

func (a *App) rosterParams(startValue, horizonValue string) (core.Date, int, error) {
	start := core.NextMonthStart(time.Now())
	if startValue != "" {
		parsed, err := core.ParseDate(startValue)
		if err != nil {
			return core.Date{}, 0, errors.InvalidInput("invalid start date (use YYYY-MM-DD)")
		}
		start = parsed
	}

	horizonDays := a.config.Roster.HorizonDays
	if horizonDays <= 0 {
		horizonDays = roster.DefaultHorizonDays
	}
	if horizonValue != "" {
		parsed, err := strconv.Atoi(horizonValue)
		if err != nil {
			return core.Date{}, 0, errors.InvalidInput("invalid horizon value")
		}
		horizonDays = parsed
	}

	return start, horizonDays, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

// writeError maps error codes to HTTP statuses and emits the JSON envelope
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError, errors.CodeDecodeError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorEnvelope{Error: err.Error(), Code: errors.GetCode(err)})
}
