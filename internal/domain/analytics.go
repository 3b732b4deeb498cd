package domain

import (
	"time"

	"github.com/google/uuid"
)

// Resolution is the granularity of DateRange bounds.
const Resolution = time.Millisecond

// DateRange is a closed interval [Start, End] at millisecond resolution.
// Stored timestamps are finer, so End covers its whole millisecond.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Length returns End - Start.
func (r DateRange) Length() time.Duration { return r.End.Sub(r.Start) }

// Until is the exclusive upper bound: the first instant after End's millisecond.
func (r DateRange) Until() time.Time { return r.End.Add(Resolution) }

// Contains reports whether t lies in [Start, Until).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.Until())
}

// LeaderboardEntry is one ranked user in the leaderboard.
type LeaderboardEntry struct {
	UserID      uuid.UUID
	Name        string
	Count       int
	AvgDuration string
	IssuesFound int
	Trend       int
}

// LeaderboardStats summarises activity for a period.
type LeaderboardStats struct {
	TotalPaths          int
	AvgPathsPerEmployee float64
	MostActiveDay       string
}

// DailyStats summarises one day of activity. The *Change fields are always 0.
type DailyStats struct {
	CompletedToday          int
	CompletedTodayChange    int
	AvgCompletionTime       string
	AvgCompletionTimeChange int
	IssuesReported          int
	IssuesReportedChange    int
	ActiveUsers             int
	ActiveUsersChange       int
}

// LocationIssues holds failed-check counts grouped by location name.
type LocationIssues struct {
	Date           string
	TotalIssues    int
	LocationCounts map[string]int
}

// RecentReport is the compact projection used by the activity feed.
type RecentReport struct {
	ID          uuid.UUID
	User        string
	Time        string
	IssuesCount int
	Duration    string
}

// ReportListItem is one row of the paginated report listing.
type ReportListItem struct {
	ID               uuid.UUID
	User             string
	UserEmail        string
	Time             string
	CreatedAt        time.Time
	Date             string
	IssuesCount      int
	Duration         string
	LocationsVisited int
	TotalLocations   int
}

// ReportPage is one page of the report listing.
type ReportPage struct {
	Reports    []ReportListItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
