package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	user := SeedUser(t, pool, WithStore("LDN_01"))
	report := SeedReport(t, pool, user.ID, time.Now(), map[string][]bool{
		domain.LocationKitchenArea: {true, false},
	})

	var email string
	err := pool.QueryRow(context.Background(), `SELECT email FROM users WHERE id = $1`, user.ID).Scan(&email)
	if err != nil {
		t.Fatalf("expected user in DB, got error: %v", err)
	}
	if email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, email)
	}

	var issues int
	err = pool.QueryRow(context.Background(),
		`SELECT count(*) FROM check_items ci
		 JOIN location_checks lc ON lc.id = ci.location_id
		 WHERE lc.report_id = $1 AND NOT ci.result`, report.ID,
	).Scan(&issues)
	if err != nil {
		t.Fatalf("count issues: %v", err)
	}
	if issues != 1 {
		t.Fatalf("expected 1 issue, got %d", issues)
	}
}
