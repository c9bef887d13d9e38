package ports

import (
	"time"

	"goroster/domain/core"
	"goroster/domain/roster"
	"goroster/internal/analytics"
)

// RosterResult is one finished roster build held for the preview→download
// flow. Session-scoped presentation state, not persistence: results expire
// after a TTL and nothing survives a restart.
type RosterResult struct {
	ID          core.ResultID     `json:"id"`
	SourceName  string            `json:"source_name"`
	Strategy    string            `json:"strategy"`
	Grid        roster.Grid       `json:"grid"`
	Summary     analytics.Summary `json:"summary"`
	Fingerprint core.Hash         `json:"fingerprint"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ResultStorePort holds finished builds keyed by result ID.
type ResultStorePort interface {
	Put(result *RosterResult)

	// Get returns the stored result, or a NOT_FOUND AppError for unknown or
	// expired IDs.
	Get(id core.ResultID) (*RosterResult, error)

	// Stop halts background eviction.
	Stop()
}
