package ports

import (
	"context"

	"captura/internal/domain"
)

// LeadUpsert is the unit of persistence handed to the capture store.
type LeadUpsert struct {
	SessionID string
	Fields    domain.LeadFields
	Status    domain.LeadStatus
	Source    string
}

// LeadWriter durably merges capture writes into one row per session.
//
// Upsert inserts a new record when none exists for the session identifier,
// otherwise it merges with coalesce-on-non-empty field semantics: an
// incoming empty field never overwrites a stored non-empty value. Status is
// last-write-wins except that a record already completed keeps its status.
// Source is set on insert and never overwritten. The merge must execute as
// a single conditional statement so concurrent writes for the same session
// cannot interleave into a half-merged record.
type LeadWriter interface {
	Upsert(ctx context.Context, up LeadUpsert) (*domain.Lead, error)
}

// LeadReader reads captured leads
type LeadReader interface {
	Get(ctx context.Context, sessionID string) (*domain.Lead, error)
	// List returns leads, optionally filtered by status ("" = all),
	// most recently updated first.
	List(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error)
}

// LeadStore is the composite persistence boundary for capture sessions
type LeadStore interface {
	LeadWriter
	LeadReader
	Close() error
}
