package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TotalLocations is the number of checklist areas a complete travel path covers.
const TotalLocations = 6

// Canonical location names, in display order.
const (
	LocationFrontCounter = "Front Counter"
	LocationDriveThru    = "Drive-Thru"
	LocationKitchenArea  = "Kitchen Area"
	LocationStorageRoom  = "Storage Room"
	LocationDiningArea   = "Dining Area"
	LocationRestrooms    = "Restrooms"
)

// CanonicalLocations returns the canonical location names in display order.
func CanonicalLocations() []string {
	return []string{
		LocationFrontCounter,
		LocationDriveThru,
		LocationKitchenArea,
		LocationStorageRoom,
		LocationDiningArea,
		LocationRestrooms,
	}
}

// Report is one submitted inspection run (a "travel path").
type Report struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	Duration        string
	DurationSeconds *int
	CreatedAt       time.Time
	Locations       []LocationCheck

	// Owner projection, filled by read queries that join users.
	UserName  string
	UserEmail string
}

// LocationCheck is one physical area visited during a report.
type LocationCheck struct {
	ID         uuid.UUID
	ReportID   uuid.UUID
	Name       string
	Position   int
	CheckItems []CheckItem
}

// CheckItem is a single yes/no inspection question. Result false means an issue.
type CheckItem struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	Question   string
	Result     bool
	Action     *string
	Position   int
}

// IssueCount returns the number of failed checks at this location.
func (l LocationCheck) IssueCount() int {
	n := 0
	for _, item := range l.CheckItems {
		if !item.Result {
			n++
		}
	}
	return n
}

// IssueCount returns the number of failed checks across all locations.
func (r Report) IssueCount() int {
	n := 0
	for _, loc := range r.Locations {
		n += loc.IssueCount()
	}
	return n
}

// ElapsedMinutes returns whole minutes between start and end, floored.
func (r Report) ElapsedMinutes() int {
	return int(r.EndTime.Sub(r.StartTime) / time.Minute)
}

// CompletionSeconds returns the parsed duration, preferring the value stored
// at ingestion over re-parsing the free-text field.
func (r Report) CompletionSeconds() (int, bool) {
	if r.DurationSeconds != nil {
		return *r.DurationSeconds, true
	}
	return ParseDuration(r.Duration)
}

var durationPattern = regexp.MustCompile(`(\d+)\s*min\s*(\d*)\s*sec`)

// ParseDuration extracts total seconds from text such as "12 min 30 sec".
// An empty seconds group counts as zero.
func ParseDuration(text string) (int, bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	seconds := 0
	if m[2] != "" {
		if seconds, err = strconv.Atoi(m[2]); err != nil {
			return 0, false
		}
	}
	return minutes*60 + seconds, true
}

// FormatDuration renders seconds as "<M> min <S> sec".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d min %d sec", seconds/60, seconds%60)
}
