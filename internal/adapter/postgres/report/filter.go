package report

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// applyFilter adds the WHERE clauses shared by list and count queries.
// The query must already join users as u and reports as r.
func applyFilter(b sq.SelectBuilder, f domain.ReportFilter) sq.SelectBuilder {
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"r.created_at": *f.From})
	}
	if f.To != nil {
		// To is inclusive at millisecond resolution; created_at carries microseconds.
		b = b.Where(sq.Lt{"r.created_at": f.To.Add(domain.Resolution)})
	}
	if f.Store != nil {
		b = b.Where(sq.Eq{"u.store": f.Store.String()})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"r.user_id": *f.UserID})
	}
	if f.Search != "" {
		pattern := postgres.ContainsPattern(f.Search)
		b = b.Where(sq.Or{
			sq.ILike{"u.name": pattern},
			sq.ILike{"u.email": pattern},
		})
	}
	return b
}

// applyPaging adds ordering, limit and offset.
func applyPaging(b sq.SelectBuilder, f domain.ReportFilter) sq.SelectBuilder {
	if f.Newest {
		b = b.OrderBy("r.created_at DESC", "r.id DESC")
	} else {
		b = b.OrderBy("r.created_at ASC", "r.id ASC")
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b
}
