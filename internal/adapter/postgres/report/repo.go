// Package report implements the travel path report repository using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

var headerColumns = []string{
	"r.id", "r.user_id", "r.start_time", "r.end_time", "r.duration", "r.duration_seconds", "r.created_at",
	"u.name AS user_name", "u.email AS user_email",
}

type reportRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Duration        string    `db:"duration"`
	DurationSeconds *int      `db:"duration_seconds"`
	CreatedAt       time.Time `db:"created_at"`
	UserName        string    `db:"user_name"`
	UserEmail       string    `db:"user_email"`
}

func (r reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:              r.ID,
		UserID:          r.UserID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Duration:        r.Duration,
		DurationSeconds: r.DurationSeconds,
		CreatedAt:       r.CreatedAt,
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
	}
}

type locationRow struct {
	ID       uuid.UUID `db:"id"`
	ReportID uuid.UUID `db:"report_id"`
	Name     string    `db:"name"`
	Position int       `db:"position"`
}

type itemRow struct {
	ID         uuid.UUID `db:"id"`
	LocationID uuid.UUID `db:"location_id"`
	Question   string    `db:"question"`
	Result     bool      `db:"result"`
	Action     *string   `db:"action"`
	Position   int       `db:"position"`
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a report with its locations and check items. IDs and
// positions are assigned here; the caller is expected to run it inside a
// transaction. The returned report carries the database created_at.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	out := *rep
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}

	ins := postgres.Builder().
		Insert("travel_path_reports").
		Columns("id", "user_id", "start_time", "end_time", "duration", "duration_seconds")
	vals := []any{out.ID, out.UserID, out.StartTime, out.EndTime, out.Duration, out.DurationSeconds}
	if !out.CreatedAt.IsZero() {
		ins = ins.Columns("created_at")
		vals = append(vals, out.CreatedAt)
	}
	query, args, err := ins.Values(vals...).Suffix("RETURNING created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "report", out.UserID)
	}

	if len(out.Locations) == 0 {
		return &out, nil
	}

	locIns := postgres.Builder().Insert("location_checks").Columns("id", "report_id", "name", "position")
	var items []domain.CheckItem

	out.Locations = make([]domain.LocationCheck, len(rep.Locations))
	for i, loc := range rep.Locations {
		loc.ID = uuid.New()
		loc.ReportID = out.ID
		loc.Position = i
		locIns = locIns.Values(loc.ID, loc.ReportID, loc.Name, loc.Position)

		checks := make([]domain.CheckItem, len(loc.CheckItems))
		for j, item := range loc.CheckItems {
			item.ID = uuid.New()
			item.LocationID = loc.ID
			item.Position = j
			if item.Result {
				item.Action = nil
			}
			checks[j] = item
			items = append(items, item)
		}
		loc.CheckItems = checks
		out.Locations[i] = loc
	}

	if err := r.exec(ctx, locIns, "location_check"); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &out, nil
	}

	itemIns := postgres.Builder().
		Insert("check_items").
		Columns("id", "location_id", "question", "result", "action", "position")
	for _, item := range items {
		itemIns = itemIns.Values(item.ID, item.LocationID, item.Question, item.Result, item.Action, item.Position)
	}
	if err := r.exec(ctx, itemIns, "check_item"); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *Repo) exec(ctx context.Context, b sq.InsertBuilder, entity string) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, "insert")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a report with its owner projection and nested checks.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	query, args, err := postgres.Builder().
		Select(headerColumns...).
		From("travel_path_reports r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	reports := []domain.Report{row.toDomain()}
	if err := r.loadChecks(ctx, reports); err != nil {
		return nil, err
	}
	return &reports[0], nil
}

// List returns report headers with the owner projection. Nested locations
// are not loaded.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	b := postgres.Builder().
		Select(headerColumns...).
		From("travel_path_reports r").
		Join("users u ON u.id = r.user_id")
	b = applyPaging(applyFilter(b, f), f)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "report", "list")
	}

	reports := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, row.toDomain())
	}
	return reports, nil
}

// ListWithChecks is List plus nested locations and check items.
func (r *Repo) ListWithChecks(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	reports, err := r.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := r.loadChecks(ctx, reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Count returns the number of reports matching f. Limit and offset are ignored.
func (r *Repo) Count(ctx context.Context, f domain.ReportFilter) (int, error) {
	b := postgres.Builder().
		Select("count(*)").
		From("travel_path_reports r").
		Join("users u ON u.id = r.user_id")

	query, args, err := applyFilter(b, f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "report", "count")
	}
	return n, nil
}

// CountByUser returns report counts per owner for reports matching f.
func (r *Repo) CountByUser(ctx context.Context, f domain.ReportFilter) (map[uuid.UUID]int, error) {
	b := postgres.Builder().
		Select("r.user_id", "count(*) AS n").
		From("travel_path_reports r").
		Join("users u ON u.id = r.user_id").
		GroupBy("r.user_id")

	query, args, err := applyFilter(b, f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []struct {
		UserID uuid.UUID `db:"user_id"`
		N      int       `db:"n"`
	}
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "report", "count_by_user")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.N
	}
	return counts, nil
}

// loadChecks fills Locations and CheckItems for reports in place, in
// submission order.
func (r *Repo) loadChecks(ctx context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		return nil
	}

	reportIDs := make([]uuid.UUID, len(reports))
	byReport := make(map[uuid.UUID]int, len(reports))
	for i, rep := range reports {
		reportIDs[i] = rep.ID
		byReport[rep.ID] = i
		reports[i].Locations = []domain.LocationCheck{}
	}

	query, args, err := postgres.Builder().
		Select("id", "report_id", "name", "position").
		From("location_checks").
		Where("report_id = ANY(?)", reportIDs).
		OrderBy("report_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var locRows []locationRow
	if err := pgxscan.Select(ctx, r.q(ctx), &locRows, query, args...); err != nil {
		return postgres.MapError(err, "location_check", "list")
	}
	if len(locRows) == 0 {
		return nil
	}

	type locRef struct{ report, loc int }
	locIDs := make([]uuid.UUID, len(locRows))
	byLocation := make(map[uuid.UUID]locRef, len(locRows))
	for i, lr := range locRows {
		locIDs[i] = lr.ID
		ri := byReport[lr.ReportID]
		reports[ri].Locations = append(reports[ri].Locations, domain.LocationCheck{
			ID:         lr.ID,
			ReportID:   lr.ReportID,
			Name:       lr.Name,
			Position:   lr.Position,
			CheckItems: []domain.CheckItem{},
		})
		byLocation[lr.ID] = locRef{report: ri, loc: len(reports[ri].Locations) - 1}
	}

	query, args, err = postgres.Builder().
		Select("id", "location_id", "question", "result", "action", "position").
		From("check_items").
		Where("location_id = ANY(?)", locIDs).
		OrderBy("location_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var itemRows []itemRow
	if err := pgxscan.Select(ctx, r.q(ctx), &itemRows, query, args...); err != nil {
		return postgres.MapError(err, "check_item", "list")
	}

	for _, ir := range itemRows {
		ref := byLocation[ir.LocationID]
		loc := &reports[ref.report].Locations[ref.loc]
		loc.CheckItems = append(loc.CheckItems, domain.CheckItem{
			ID:         ir.ID,
			LocationID: ir.LocationID,
			Question:   ir.Question,
			Result:     ir.Result,
			Action:     ir.Action,
			Position:   ir.Position,
		})
	}
	return nil
}
