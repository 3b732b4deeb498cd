package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserOption customizes a seeded user.
type UserOption func(*domain.User)

// WithRole sets the seeded user's role.
func WithRole(role domain.UserRole) UserOption {
	return func(u *domain.User) { u.Role = role }
}

// WithStore assigns the seeded user to a store.
func WithStore(store domain.Store) UserOption {
	return func(u *domain.User) { u.Store = &store }
}

// WithName overrides the generated display name.
func WithName(name string) UserOption {
	return func(u *domain.User) { u.Name = name }
}

// SeedUser inserts a verified USER account with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...UserOption) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.UserRoleUser,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&user)
	}

	var store *string
	if user.Store != nil {
		s := user.Store.String()
		store = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, store, is_verified, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role.String(), store, user.IsVerified, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedReport inserts a report for userID created at createdAt. Keys of
// locations are canonical location names; each bool becomes one check item
// and false is recorded as an issue.
func SeedReport(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time, locations map[string][]bool) domain.Report {
	t.Helper()
	ctx := context.Background()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	secs := 754
	report := domain.Report{
		ID:              uuid.New(),
		UserID:          userID,
		StartTime:       createdAt.Add(-13 * time.Minute),
		EndTime:         createdAt,
		Duration:        "12 min 34 sec",
		DurationSeconds: &secs,
		CreatedAt:       createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO travel_path_reports (id, user_id, start_time, end_time, duration, duration_seconds, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		report.ID, report.UserID, report.StartTime, report.EndTime, report.Duration, report.DurationSeconds, report.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert report: %v", err)
	}

	pos := 0
	for _, name := range domain.CanonicalLocations() {
		results, ok := locations[name]
		if !ok {
			continue
		}
		loc := domain.LocationCheck{ID: uuid.New(), ReportID: report.ID, Name: name, Position: pos}
		pos++

		_, err := pool.Exec(ctx,
			`INSERT INTO location_checks (id, report_id, name, position) VALUES ($1, $2, $3, $4)`,
			loc.ID, loc.ReportID, loc.Name, loc.Position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedReport insert location %q: %v", name, err)
		}

		for i, result := range results {
			item := domain.CheckItem{
				ID:         uuid.New(),
				LocationID: loc.ID,
				Question:   "Question " + uniqueSuffix(),
				Result:     result,
				Position:   i,
			}
			if !result {
				action := "Fix it"
				item.Action = &action
			}
			_, err := pool.Exec(ctx,
				`INSERT INTO check_items (id, location_id, question, result, action, position)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				item.ID, item.LocationID, item.Question, item.Result, item.Action, item.Position,
			)
			if err != nil {
				t.Fatalf("testhelper: SeedReport insert check item: %v", err)
			}
			loc.CheckItems = append(loc.CheckItems, item)
		}
		report.Locations = append(report.Locations, loc)
	}

	return report
}
