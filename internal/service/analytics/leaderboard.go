package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// LeaderboardSize caps the number of ranked entries.
const LeaderboardSize = 10

// PeriodInput scopes leaderboard queries.
type PeriodInput struct {
	Period domain.Period
	Store  *domain.Store
}

func (i PeriodInput) period() domain.Period {
	if i.Period == "" {
		return domain.PeriodDaily
	}
	return i.Period
}

// Leaderboard ranks users by reports completed in the period.
func (s *Service) Leaderboard(ctx context.Context, in PeriodInput) ([]domain.LeaderboardEntry, error) {
	cur, err := ResolvePeriod(in.period(), s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	prev := PreviousPeriod(cur)
	base := domain.ReportFilter{Store: in.Store}

	var (
		reports    []domain.Report
		prevCounts map[uuid.UUID]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reports, err = s.reports.ListWithChecks(gctx, base.InRange(cur))
		return err
	})
	g.Go(func() error {
		var err error
		prevCounts, err = s.reports.CountByUser(gctx, base.InRange(prev))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.Leaderboard: %w", err)
	}

	entries := BuildLeaderboard(reports, prevCounts)

	s.log.DebugContext(ctx, "leaderboard built",
		slog.String("period", in.period().String()),
		slog.Int("reports", len(reports)),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

type userTally struct {
	userID  uuid.UUID
	name    string
	count   int
	minutes int
	issues  int
}

// BuildLeaderboard groups reports by owner in first-seen order, ranks by count
// (stable, so ties keep first-seen order) and keeps the top LeaderboardSize.
// prevCounts supplies previous-period counts for the trend.
func BuildLeaderboard(reports []domain.Report, prevCounts map[uuid.UUID]int) []domain.LeaderboardEntry {
	index := make(map[uuid.UUID]int)
	var tallies []*userTally

	for _, r := range reports {
		i, ok := index[r.UserID]
		if !ok {
			i = len(tallies)
			index[r.UserID] = i
			tallies = append(tallies, &userTally{userID: r.UserID, name: ownerName(r)})
		}
		t := tallies[i]
		t.count++
		t.minutes += r.ElapsedMinutes()
		t.issues += r.IssueCount()
	}

	sort.SliceStable(tallies, func(a, b int) bool {
		return tallies[a].count > tallies[b].count
	})
	if len(tallies) > LeaderboardSize {
		tallies = tallies[:LeaderboardSize]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(tallies))
	for _, t := range tallies {
		entries = append(entries, domain.LeaderboardEntry{
			UserID:      t.userID,
			Name:        t.name,
			Count:       t.count,
			AvgDuration: fmt.Sprintf("%d min", roundHalfUp(float64(t.minutes)/float64(t.count))),
			IssuesFound: t.issues,
			Trend:       Trend(t.count, prevCounts[t.userID]),
		})
	}
	return entries
}

// Trend is the percentage change from prev to cur. A zero prev is treated as 1.
func Trend(cur, prev int) int {
	return roundHalfUp(float64(cur-prev) / float64(max(prev, 1)) * 100)
}

func ownerName(r domain.Report) string {
	if r.UserName == "" {
		return "Unknown"
	}
	return r.UserName
}
