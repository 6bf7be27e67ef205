// Package store persists classification runs so corpus results can
// be compared across taxonomy revisions without re-extracting the
// source documents.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
)

// Store is the interface for persisting and querying run results.
type Store interface {
	Close() error

	// Runs
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Corpus rows
	SaveCorpusRows(ctx context.Context, runID string, rows []aggregate.CorpusRow) error
	GetCorpusRows(ctx context.Context, runID string) ([]aggregate.CorpusRow, error)

	// Per-document failures (skip-and-report)
	SaveFailures(ctx context.Context, runID string, failures []Failure) error
	GetFailures(ctx context.Context, runID string) ([]Failure, error)
}

// Run records one corpus classification run.
type Run struct {
	ID           string
	StartedAt    time.Time
	TaxonomyPath string
	Articles     int
	Failures     int
}

// Failure records one document that could not be processed during a
// run. The rest of the corpus is unaffected.
type Failure struct {
	Path   string
	Reason string
}

// NewRunID generates a lexically sortable run identifier.
func NewRunID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}
