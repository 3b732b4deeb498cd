package analytics

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

func newTestService(reports reportReader, users employeeCounter, now time.Time) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(logger, reports, users, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func ptr[T any](v T) *T { return &v }

// makeReport builds a report owned by userID that took minutes and has
// issues failed checks spread over one location.
func makeReport(userID uuid.UUID, name string, created time.Time, minutes, issues int) domain.Report {
	items := make([]domain.CheckItem, 0, issues+1)
	items = append(items, domain.CheckItem{Question: "ok?", Result: true})
	for i := 0; i < issues; i++ {
		items = append(items, domain.CheckItem{Question: "broken?", Result: false, Action: ptr("fix")})
	}
	return domain.Report{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  name,
		StartTime: created.Add(-time.Duration(minutes) * time.Minute),
		EndTime:   created,
		CreatedAt: created,
		Duration:  domain.FormatDuration(minutes * 60),
		Locations: []domain.LocationCheck{{Name: domain.LocationFrontCounter, CheckItems: items}},
	}
}
