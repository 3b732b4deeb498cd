package analytics

import (
	"context"
	"fmt"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// IssuesByLocation counts failed checks per location for one day.
func (s *Service) IssuesByLocation(ctx context.Context, in DayInput) (*domain.LocationIssues, error) {
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
		return nil, fmt.Errorf("analytics.IssuesByLocation: %w", err)
	}

	issues := BuildLocationIssues(reports, day.Start.Format(dateLayout))
	return &issues, nil
}

// BuildLocationIssues seeds every canonical location with zero and adds the
// failed checks of each visited location. Unknown location names get their
// own key.
func BuildLocationIssues(reports []domain.Report, date string) domain.LocationIssues {
	counts := make(map[string]int, domain.TotalLocations)
	for _, name := range domain.CanonicalLocations() {
		counts[name] = 0
	}

	total := 0
	for _, r := range reports {
		for _, loc := range r.Locations {
			n := loc.IssueCount()
			counts[loc.Name] += n
			total += n
		}
	}

	return domain.LocationIssues{
		Date:           date,
		TotalIssues:    total,
		LocationCounts: counts,
	}
}
