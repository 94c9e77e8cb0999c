// Package model defines the complaint record and the derived analytics shapes.
package model

import (
	"fmt"
	"time"
)

// Priority is the urgency level assigned to a complaint.
type Priority string

// Priority values form a closed set; anything else is a data-integrity
// violation from the upstream source and is never counted in priority buckets.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Status is the resolution state of a complaint.
type Status string

// Status values form a closed set.
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Priorities lists the canonical priority display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Statuses lists the canonical status display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved}

// ParsePriority validates a raw priority string at the ingestion boundary.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// ParseStatus validates a raw status string at the ingestion boundary.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Complaint is one citizen-submitted complaint record. Records are immutable
// snapshots as far as the analytics engine is concerned; only the store
// mutates status.
type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Geolocatable reports whether the record carries both coordinates and is
// therefore eligible for map projection.
func (c Complaint) Geolocatable() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Criteria holds the optional exact-match dashboard filters. The zero value
// of each field means "no constraint"; matching is exact string equality.
type Criteria struct {
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return c.Category == "" && c.Priority == "" && c.Status == ""
}

// Matches reports whether a record satisfies every set constraint.
func (c Criteria) Matches(rec Complaint) bool {
	if c.Category != "" && rec.Category != c.Category {
		return false
	}
	if c.Priority != "" && string(rec.Priority) != c.Priority {
		return false
	}
	if c.Status != "" && string(rec.Status) != c.Status {
		return false
	}
	return true
}
