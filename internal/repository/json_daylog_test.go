package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pomo/internal/domain"
)

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, "2024-03-11")
	require.NoError(t, err)
	return d
}

func TestLoad_MissingFileReturnsFreshDayLog(t *testing.T) {
	repo := NewJSONDayLogRepo(t.TempDir())

	day, err := repo.Load(context.Background(), testDate(t))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", day.Date)
	assert.Empty(t, day.Activities)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewJSONDayLogRepo(filepath.Join(t.TempDir(), "data"))
	ctx := context.Background()
	date := testDate(t)

	day := domain.NewDayLog(date)
	day.Append("reading", domain.Action{Kind: domain.ActionStart, Time: date.Add(9 * time.Hour)})
	day.Append("reading", domain.Action{Kind: domain.ActionStop, Time: date.Add(9*time.Hour + 25*time.Minute)})
	day.Append("writing", domain.Action{Kind: domain.ActionStart, Time: date.Add(10 * time.Hour)})

	require.NoError(t, repo.Save(ctx, day))

	loaded, err := repo.Load(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, day.Date, loaded.Date)
	require.Len(t, loaded.Activities, 2)
	require.Len(t, loaded.Activities["reading"], 2)
	assert.Equal(t, domain.ActionStart, loaded.Activities["reading"][0].Kind)
	assert.True(t, loaded.Activities["reading"][0].Time.Equal(date.Add(9*time.Hour)))
	assert.True(t, loaded.Activities["writing"].Running())
}

func TestSave_CreatesMissingDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo := NewJSONDayLogRepo(dir)

	require.NoError(t, repo.Save(context.Background(), domain.NewDayLog(testDate(t))))

	_, err := os.Stat(filepath.Join(dir, "2024-03-11.json"))
	assert.NoError(t, err)
}

func TestSave_OverwritesPriorContent(t *testing.T) {
	repo := NewJSONDayLogRepo(t.TempDir())
	ctx := context.Background()
	date := testDate(t)

	day := domain.NewDayLog(date)
	day.Append("reading", domain.Action{Kind: domain.ActionStart, Time: date.Add(9 * time.Hour)})
	require.NoError(t, repo.Save(ctx, day))

	day.Append("reading", domain.Action{Kind: domain.ActionStop, Time: date.Add(10 * time.Hour)})
	require.NoError(t, repo.Save(ctx, day))

	loaded, err := repo.Load(ctx, date)
	require.NoError(t, err)
	assert.Len(t, loaded.Activities["reading"], 2)
}

func TestLoad_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONDayLogRepo(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-11.json"), []byte("{not json"), 0644))

	_, err := repo.Load(context.Background(), testDate(t))
	assert.Error(t, err)
}

func TestLoad_LegacyLayoutNamesMigrate(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONDayLogRepo(dir)

	// Flat activity map at top level, the oldest persisted shape.
	legacy := `{"reading": [{"action": "start", "time": "2024-03-11T09:00:00Z"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-11.json"), []byte(legacy), 0644))

	_, err := repo.Load(context.Background(), testDate(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pomo migrate")
}
