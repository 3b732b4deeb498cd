package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportFilter narrows report queries. Zero values mean "no constraint".
type ReportFilter struct {
	From   *time.Time
	To     *time.Time // inclusive through the end of its millisecond
	Store  *Store
	UserID *uuid.UUID
	Search string // case-insensitive substring of owner name or email
	Limit  int
	Offset int
	// Newest orders by created_at DESC; otherwise ASC.
	Newest bool
}

// InRange returns a copy of f constrained to r.
func (f ReportFilter) InRange(r DateRange) ReportFilter {
	from, to := r.Start, r.End
	f.From = &from
	f.To = &to
	return f
}
