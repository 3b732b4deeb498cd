package analytics

import (
	"time"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const dateLayout = "2006-01-02"

var allTimeStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDate parses a YYYY-MM-DD reference date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t, nil
}

func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// ResolvePeriod returns the closed interval named by p around ref, computed
// in loc. Weeks run Sunday through Saturday.
func ResolvePeriod(p domain.Period, ref time.Time, loc *time.Location) (domain.DateRange, error) {
	if !p.IsValid() {
		return domain.DateRange{}, domain.NewValidationError("period", "unknown period "+string(p))
	}

	y, m, d := ref.In(loc).Date()

	switch p.Canonical() {
	case domain.PeriodYesterday:
		return domain.DateRange{Start: startOfDay(y, m, d-1, loc), End: endOfDay(y, m, d-1, loc)}, nil
	case domain.PeriodWeek:
		wd := int(startOfDay(y, m, d, loc).Weekday())
		return domain.DateRange{Start: startOfDay(y, m, d-wd, loc), End: endOfDay(y, m, d-wd+6, loc)}, nil
	case domain.PeriodMonth:
		return domain.DateRange{Start: startOfDay(y, m, 1, loc), End: endOfDay(y, m+1, 0, loc)}, nil
	case domain.PeriodAll:
		start := time.Date(allTimeStart.Year(), allTimeStart.Month(), allTimeStart.Day(), 0, 0, 0, 0, loc)
		return domain.DateRange{Start: start, End: endOfDay(y, m, d, loc)}, nil
	default:
		return domain.DateRange{Start: startOfDay(y, m, d, loc), End: endOfDay(y, m, d, loc)}, nil
	}
}

// PreviousPeriod returns the interval of equal length ending 1ms before r.Start.
func PreviousPeriod(r domain.DateRange) domain.DateRange {
	end := r.Start.Add(-time.Millisecond)
	return domain.DateRange{Start: end.Add(-r.Length()), End: end}
}
