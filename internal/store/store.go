// Package store persists complaint records behind a driver-selectable
// interface with SQLite and Postgres implementations.
package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// ErrNotFound is returned when a complaint ID does not exist.
var ErrNotFound = eris.New("store: complaint not found")

// Store defines the persistence interface for complaint records. The
// analytics engine never touches the store directly; callers materialize a
// snapshot via ListComplaints and hand it to the engine.
type Store interface {
	CreateComplaint(ctx context.Context, c model.Complaint) (*model.Complaint, error)
	GetComplaint(ctx context.Context, id string) (*model.Complaint, error)

	// ListComplaints returns the full snapshot, most recent first.
	ListComplaints(ctx context.Context) ([]model.Complaint, error)

	UpdateStatus(ctx context.Context, id string, status model.Status) error
	CountComplaints(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// nullFloat converts an optional coordinate for SQL parameters.
func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// floatPtr converts a scanned nullable coordinate back to the model shape.
func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
