//go:build !integration

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")

	st, err := NewSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func lat(v float64) *float64 { return &v }

func TestSQLite_CreateAndGetComplaint(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	created, err := st.CreateComplaint(ctx, model.Complaint{
		Title:     "Pothole on Main St",
		Location:  "Zone A",
		Latitude:  lat(12.9716),
		Longitude: lat(77.5946),
		Category:  "Roads",
		Priority:  model.PriorityHigh,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.StatusPending, created.Status)

	got, err := st.GetComplaint(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pothole on Main St", got.Title)
	assert.Equal(t, "Zone A", got.Location)
	require.NotNil(t, got.Latitude)
	assert.Equal(t, 12.9716, *got.Latitude)
	assert.Equal(t, model.PriorityHigh, got.Priority)
}

func TestSQLite_CreateComplaintWithoutCoordinates(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	created, err := st.CreateComplaint(ctx, model.Complaint{
		Title:    "Noise complaint",
		Location: "Zone B",
		Category: "Noise",
		Priority: model.PriorityLow,
	})
	require.NoError(t, err)

	got, err := st.GetComplaint(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
	assert.False(t, got.Geolocatable())
}

func TestSQLite_GetComplaint_NotFound(t *testing.T) {
	st := newTestSQLite(t)

	_, err := st.GetComplaint(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_ListComplaints_MostRecentFirst(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := st.CreateComplaint(ctx, model.Complaint{
			Title:    title,
			Location: "Zone A",
			Category: "Roads",
			Priority: model.PriorityLow,
		})
		require.NoError(t, err)
	}

	got, err := st.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Same-second inserts fall back to id order; every row must be present.
	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	assert.ElementsMatch(t, []string{"first", "second", "third"}, titles)
}

func TestSQLite_UpdateStatus(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	created, err := st.CreateComplaint(ctx, model.Complaint{
		Title:    "Leak",
		Location: "Zone C",
		Category: "Water",
		Priority: model.PriorityMedium,
	})
	require.NoError(t, err)

	require.NoError(t, st.UpdateStatus(ctx, created.ID, model.StatusResolved))

	got, err := st.GetComplaint(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusResolved, got.Status)
}

func TestSQLite_UpdateStatus_NotFound(t *testing.T) {
	st := newTestSQLite(t)

	err := st.UpdateStatus(context.Background(), "missing", model.StatusResolved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_CountComplaints(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	n, err := st.CountComplaints(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = st.CreateComplaint(ctx, model.Complaint{
		Title: "One", Location: "Zone A", Category: "Roads", Priority: model.PriorityLow,
	})
	require.NoError(t, err)

	n, err = st.CountComplaints(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
