package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelpath-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/travelpath-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

func newRepo(t *testing.T) (*report.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return report.New(pool), pool
}

func strPtr(s string) *string { return &s }

func TestRepo_Create_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)

	start := time.Now().UTC().Add(-20 * time.Minute).Truncate(time.Microsecond)
	secs := 605
	in := &domain.Report{
		UserID:          owner.ID,
		StartTime:       start,
		EndTime:         start.Add(10 * time.Minute),
		Duration:        "10 min 5 sec",
		DurationSeconds: &secs,
		Locations: []domain.LocationCheck{
			{Name: domain.LocationKitchenArea, CheckItems: []domain.CheckItem{
				{Question: "Floors clean?", Result: true, Action: strPtr("ignored")},
				{Question: "Fridge temp ok?", Result: false, Action: strPtr("Call engineer")},
				{Question: "Bins emptied?", Result: true},
			}},
			{Name: domain.LocationRestrooms, CheckItems: []domain.CheckItem{
				{Question: "Soap stocked?", Result: true},
			}},
		},
	}

	tm := postgres.NewTxManager(pool)
	var created *domain.Report
	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = repo.Create(ctx, in)
		return err
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, created.IssueCount())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.Name, got.UserName)
	assert.Equal(t, owner.Email, got.UserEmail)
	require.NotNil(t, got.DurationSeconds)
	assert.Equal(t, 605, *got.DurationSeconds)

	require.Len(t, got.Locations, 2)
	assert.Equal(t, domain.LocationKitchenArea, got.Locations[0].Name)
	assert.Equal(t, domain.LocationRestrooms, got.Locations[1].Name)
	require.Len(t, got.Locations[0].CheckItems, 3)
	for i, item := range got.Locations[0].CheckItems {
		assert.Equal(t, in.Locations[0].CheckItems[i].Question, item.Question)
		assert.Equal(t, i, item.Position)
	}
	assert.Nil(t, got.Locations[0].CheckItems[0].Action)
	require.NotNil(t, got.Locations[0].CheckItems[1].Action)
	assert.Equal(t, "Call engineer", *got.Locations[0].CheckItems[1].Action)
	assert.Equal(t, 1, got.IssueCount())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Count_SubMillisecondBeforeMidnight(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	store := domain.NormalizeStore("edge_" + uuid.New().String()[:4])
	u := testhelper.SeedUser(t, pool, testhelper.WithStore(store))

	midnight := time.Date(2031, 7, 9, 0, 0, 0, 0, time.UTC)
	testhelper.SeedReport(t, pool, u.ID, midnight.Add(-500*time.Microsecond), nil)

	dayOf := func(start time.Time) domain.ReportFilter {
		return domain.ReportFilter{Store: &store}.InRange(domain.DateRange{
			Start: start,
			End:   start.Add(24*time.Hour - time.Millisecond),
		})
	}

	before, err := repo.Count(ctx, dayOf(midnight.Add(-24*time.Hour)))
	require.NoError(t, err)
	after, err := repo.Count(ctx, dayOf(midnight))
	require.NoError(t, err)

	assert.Equal(t, 1, before, "report at 23:59:59.9995 belongs to its own day")
	assert.Equal(t, 0, after)
}

func TestRepo_ListAndCount_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	store := domain.NormalizeStore("list_" + uuid.New().String()[:4])
	alice := testhelper.SeedUser(t, pool, testhelper.WithStore(store), testhelper.WithName("Alice 100%"))
	bob := testhelper.SeedUser(t, pool, testhelper.WithStore(store), testhelper.WithName("Bob"))

	day := time.Date(2031, 3, 4, 0, 0, 0, 0, time.UTC)
	testhelper.SeedReport(t, pool, alice.ID, day.Add(9*time.Hour), map[string][]bool{domain.LocationDriveThru: {false}})
	testhelper.SeedReport(t, pool, bob.ID, day.Add(10*time.Hour), nil)
	latest := testhelper.SeedReport(t, pool, alice.ID, day.Add(11*time.Hour), nil)
	testhelper.SeedReport(t, pool, alice.ID, day.Add(30*time.Hour), nil)

	f := domain.ReportFilter{Store: &store}.InRange(domain.DateRange{
		Start: day,
		End:   day.Add(24*time.Hour - time.Millisecond),
	})

	n, err := repo.Count(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	newest := f
	newest.Newest = true
	newest.Limit = 1
	page, err := repo.List(ctx, newest)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, latest.ID, page[0].ID)

	search := f
	search.Search = "100%"
	n, err = repo.Count(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	byUser, err := repo.CountByUser(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{alice.ID: 2, bob.ID: 1}, byUser)

	withChecks, err := repo.ListWithChecks(ctx, f)
	require.NoError(t, err)
	require.Len(t, withChecks, 3)
	assert.Equal(t, alice.ID, withChecks[0].UserID)
	assert.Equal(t, 1, withChecks[0].IssueCount())
	assert.Empty(t, withChecks[1].Locations)
}
