package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/semaphore"

	"goroster/adapters/tabular"
	"goroster/domain/core"
	"goroster/domain/employee"
	"goroster/domain/roster"
	"goroster/domain/table"
	"goroster/internal/analytics"
	"goroster/internal/errors"
	"goroster/ports"
)

// BuildRequest carries one upload through the pipeline. Start date and
// horizon always arrive explicitly; the service reads no ambient state.
type BuildRequest struct {
	Filename    string
	Source      io.Reader
	Size        int64
	Start       core.Date
	HorizonDays int
}

// RosterService orchestrates one upload end-to-end: validate, decode,
// normalize, generate, summarize, fingerprint, store. A weighted semaphore
// bounds concurrent builds so simultaneous uploads cannot pile decoded
// tables up in memory.
type RosterService struct {
	decoder        ports.TableDecoderPort
	store          ports.ResultStorePort
	builds         *semaphore.Weighted
	maxUploadBytes int64
}

// NewRosterService creates the service with its collaborators and limits
func NewRosterService(decoder ports.TableDecoderPort, store ports.ResultStorePort, maxConcurrentBuilds int, maxUploadBytes int64) *RosterService {
	if maxConcurrentBuilds < 1 {
		maxConcurrentBuilds = 1
	}
	return &RosterService{
		decoder:        decoder,
		store:          store,
		builds:         semaphore.NewWeighted(int64(maxConcurrentBuilds)),
		maxUploadBytes: maxUploadBytes,
	}
}

// Build runs the full pipeline for one upload and stores the result
func (s *RosterService) Build(ctx context.Context, req BuildRequest) (*ports.RosterResult, error) {
	if err := s.validateUpload(req); err != nil {
		return nil, err
	}

	if err := s.builds.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "build slot unavailable")
	}
	defer s.builds.Release(1)

	raw, err := s.decoder.Decode(req.Source, req.Filename)
	if err != nil {
		return nil, err
	}

	return s.buildFromTable(raw, req.Filename, req.Start, req.HorizonDays)
}

// BuildFromTable runs the pipeline on an already-decoded table. Used by the
// demo flow and by tests that bypass file decoding.
func (s *RosterService) BuildFromTable(ctx context.Context, raw table.Raw, sourceName string, start core.Date, horizonDays int) (*ports.RosterResult, error) {
	if err := s.builds.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "build slot unavailable")
	}
	defer s.builds.Release(1)

	return s.buildFromTable(raw, sourceName, start, horizonDays)
}

func (s *RosterService) buildFromTable(raw table.Raw, sourceName string, start core.Date, horizonDays int) (*ports.RosterResult, error) {
	buildStart := time.Now()

	resolution, err := employee.Resolve(raw)
	if err != nil {
		// A data-shape problem in the upload, not a system fault. Surfaced
		// verbatim and never retried.
		return nil, &errors.AppError{Code: errors.CodeValidationError, Message: "normalization failed", Cause: err}
	}
	employees := employee.Project(resolution)

	grid := roster.Generate(employees, start, horizonDays)

	summary, err := analytics.Summarize(grid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize roster")
	}

	result := &ports.RosterResult{
		ID:          core.NewResultID(),
		SourceName:  sourceName,
		Strategy:    resolution.Strategy,
		Grid:        grid,
		Summary:     summary,
		Fingerprint: roster.Fingerprint(grid),
		CreatedAt:   time.Now(),
	}
	s.store.Put(result)

	buildTime := time.Since(buildStart)
	log.Printf("[RosterService] Built roster %s in %.2fms (%d employees, %d days, strategy=%s)",
		result.ID, float64(buildTime.Nanoseconds())/1e6, grid.EmployeeCount(), grid.HorizonDays, resolution.Strategy)

	return result, nil
}

// BuildFromEmployees skips normalization and rosters a caller-supplied
// canonical list. The generator is total, so the only failure modes are
// summarization on degenerate input and a closed context.
func (s *RosterService) BuildFromEmployees(ctx context.Context, employees []employee.Record, sourceName string, start core.Date, horizonDays int) (*ports.RosterResult, error) {
	if err := s.builds.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "build slot unavailable")
	}
	defer s.builds.Release(1)

	grid := roster.Generate(employees, start, horizonDays)

	summary, err := analytics.Summarize(grid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize roster")
	}

	result := &ports.RosterResult{
		ID:          core.NewResultID(),
		SourceName:  sourceName,
		Grid:        grid,
		Summary:     summary,
		Fingerprint: roster.Fingerprint(grid),
		CreatedAt:   time.Now(),
	}
	s.store.Put(result)
	return result, nil
}

// Decode exposes the decoder to callers that want the raw table, like the
// API's normalize endpoint and the CLI's inspect command.
func (s *RosterService) Decode(src io.Reader, filename string) (table.Raw, error) {
	return s.decoder.Decode(src, filename)
}

// Get returns a stored result by ID
func (s *RosterService) Get(id core.ResultID) (*ports.RosterResult, error) {
	return s.store.Get(id)
}

func (s *RosterService) validateUpload(req BuildRequest) error {
	if !tabular.Supported(req.Filename) {
		return errors.InvalidInput(fmt.Sprintf("unsupported file type: %s (use one of %v)", req.Filename, tabular.SupportedExtensions))
	}
	if s.maxUploadBytes > 0 && req.Size > s.maxUploadBytes {
		return errors.InvalidInput(fmt.Sprintf("file too large: %d bytes (limit %d)", req.Size, s.maxUploadBytes))
	}
	return nil
}
