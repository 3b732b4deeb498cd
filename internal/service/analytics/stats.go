package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const mostActiveDayLayout = "Monday, Jan 2"

// LeaderboardStats summarises the period: total reports, average per
// employee and the busiest day.
func (s *Service) LeaderboardStats(ctx context.Context, in PeriodInput) (*domain.LeaderboardStats, error) {
	cur, err := ResolvePeriod(in.period(), s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	var (
		reports   []domain.Report
		employees int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reports, err = s.reports.List(gctx, domain.ReportFilter{Store: in.Store}.InRange(cur))
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.users.CountEmployees(gctx, in.Store)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.LeaderboardStats: %w", err)
	}

	created := make([]time.Time, len(reports))
	for i, r := range reports {
		created[i] = r.CreatedAt
	}
	stats := BuildLeaderboardStats(created, employees)
	return &stats, nil
}

// BuildLeaderboardStats computes stats from report creation times. The most
// active day is grouped by UTC calendar date; the first date seen wins ties.
func BuildLeaderboardStats(created []time.Time, employees int) domain.LeaderboardStats {
	stats := domain.LeaderboardStats{TotalPaths: len(created)}
	if employees > 0 {
		stats.AvgPathsPerEmployee = round10(float64(len(created)) / float64(employees))
	}

	type dayCount struct {
		day   time.Time
		count int
	}
	index := make(map[string]int)
	var days []dayCount
	for _, t := range created {
		u := t.UTC()
		key := u.Format(dateLayout)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, dayCount{day: u})
		}
		days[i].count++
	}

	best := -1
	for i, d := range days {
		if best < 0 || d.count > days[best].count {
			best = i
		}
	}
	if best >= 0 {
		stats.MostActiveDay = days[best].day.Format(mostActiveDayLayout)
	}
	return stats
}

// DayInput scopes single-day queries. An empty Date means today.
type DayInput struct {
	Date  string
	Store *domain.Store
}

// DailyStats summarises one day of activity.
func (s *Service) DailyStats(ctx context.Context, in DayInput) (*domain.DailyStats, error) {
	ref, err := s.reference(in.Date)
	if err != nil {
		return nil, err
	}
	day, err := ResolvePeriod(domain.PeriodToday, ref, s.loc)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ListWithChecks(ctx, domain.ReportFilter{Store: in.Store}.InRange(day))
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyStats: %w", err)
	}

	stats := BuildDailyStats(reports)
	return &stats, nil
}

// BuildDailyStats aggregates a day's reports. Reports whose duration cannot be
// parsed are left out of the average.
func BuildDailyStats(reports []domain.Report) domain.DailyStats {
	stats := domain.DailyStats{AvgCompletionTime: "0 min"}
	if len(reports) == 0 {
		return stats
	}

	users := make(map[uuid.UUID]struct{})
	var totalSeconds, valid int
	for _, r := range reports {
		users[r.UserID] = struct{}{}
		stats.IssuesReported += r.IssueCount()
		if secs, ok := r.CompletionSeconds(); ok {
			totalSeconds += secs
			valid++
		}
	}

	stats.CompletedToday = len(reports)
	stats.ActiveUsers = len(users)
	if valid > 0 {
		stats.AvgCompletionTime = domain.FormatDuration(roundHalfUp(float64(totalSeconds) / float64(valid)))
	}
	return stats
}
