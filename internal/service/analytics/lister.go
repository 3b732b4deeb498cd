package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxOffset       = math.MaxInt32

	defaultRecentLimit = 5
	maxRecentLimit     = 50

	clockLayout = "3:04 PM"
)

// ListInput parameterises the paginated report listing.
type ListInput struct {
	Period   domain.Period
	Date     string
	Page     int
	PageSize int
	Search   string
	Store    *domain.Store
}

// Validate applies defaults and rejects out-of-range values.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Period == "" {
		i.Period = domain.PeriodToday
	} else if !i.Period.IsValid() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "unknown period " + string(i.Period)})
	}

	if i.Page == 0 {
		i.Page = 1
	} else if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}

	if i.PageSize == 0 {
		i.PageSize = defaultPageSize
	} else if i.PageSize < 0 || i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "pageSize", Message: fmt.Sprintf("must be between 1 and %d", maxPageSize)})
	}

	if i.Page > 0 && i.PageSize > 0 && i.PageSize <= maxPageSize && i.Page-1 > maxOffset/i.PageSize {
		errs = append(errs, domain.FieldError{Field: "page", Message: "too large"})
	}

	i.Search = strings.TrimSpace(i.Search)

	return domain.CheckFields(errs)
}

// ListReports returns one page of reports in the period, newest first.
func (s *Service) ListReports(ctx context.Context, in ListInput) (*domain.ReportPage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	ref, err := s.reference(in.Date)
	if err != nil {
		return nil, err
	}
	period, err := ResolvePeriod(in.Period, ref, s.loc)
	if err != nil {
		return nil, err
	}

	f := domain.ReportFilter{Store: in.Store, Search: in.Search}.InRange(period)
	paged := f
	paged.Newest = true
	paged.Limit = in.PageSize
	paged.Offset = (in.Page - 1) * in.PageSize

	var (
		reports []domain.Report
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.reports.Count(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = s.reports.ListWithChecks(gctx, paged)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.ListReports: %w", err)
	}

	page := BuildReportPage(reports, total, in.Page, in.PageSize, s.loc)
	return &page, nil
}

// BuildReportPage projects reports into list items and computes page counts.
func BuildReportPage(reports []domain.Report, total, page, pageSize int, loc *time.Location) domain.ReportPage {
	items := make([]domain.ReportListItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, domain.ReportListItem{
			ID:               r.ID,
			User:             ownerName(r),
			UserEmail:        r.UserEmail,
			Time:             r.StartTime.In(loc).Format(clockLayout),
			CreatedAt:        r.CreatedAt,
			Date:             r.CreatedAt.In(loc).Format(dateLayout),
			IssuesCount:      r.IssueCount(),
			Duration:         r.Duration,
			LocationsVisited: len(r.Locations),
			TotalLocations:   domain.TotalLocations,
		})
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return domain.ReportPage{
		Reports:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// RecentInput parameterises the activity feed.
type RecentInput struct {
	Limit int
	Store *domain.Store
}

// RecentReports returns the most recent reports with humanised ages.
func (s *Service) RecentReports(ctx context.Context, in RecentInput) ([]domain.RecentReport, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	reports, err := s.reports.ListWithChecks(ctx, domain.ReportFilter{
		Store:  in.Store,
		Limit:  limit,
		Newest: true,
	})
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentReports: %w", err)
	}

	return BuildRecent(reports, s.now()), nil
}

// BuildRecent projects reports into feed entries aged relative to now.
func BuildRecent(reports []domain.Report, now time.Time) []domain.RecentReport {
	out := make([]domain.RecentReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.RecentReport{
			ID:          r.ID,
			User:        ownerName(r),
			Time:        TimeAgo(r.CreatedAt, now),
			IssuesCount: r.IssueCount(),
			Duration:    r.Duration,
		})
	}
	return out
}

// TimeAgo renders the age of t as "N <unit>(s) ago". Months are 30 days and
// years are 12 months.
func TimeAgo(t, now time.Time) string {
	secs := int(now.Sub(t) / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs < 60 {
		return fmt.Sprintf("%d seconds ago", secs)
	}

	minutes := secs / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}
	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}
	days := hours / 24
	if days < 30 {
		return plural(days, "day")
	}
	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}
	return plural(months/12, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
