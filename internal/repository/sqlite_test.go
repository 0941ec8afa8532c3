package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Детерминированные created_at: каждая запись на секунду позже предыдущей
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	db.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return db
}

func newEntry(userID, name string) *models.LandDataEntry {
	return models.NewLandDataEntry(userID, name, 9.05, 38.74,
		models.Readings{VegetationIndex: 0.5, SoilMoisture: 50, Temperature: 20, Rainfall: 0},
		models.Recommendation{
			DegradationLevel: models.RiskModerate,
			Text:             "Monitor regularly.",
			FloodRisk:        models.RiskLow,
			DroughtRisk:      models.RiskLow,
		})
}

func TestSQLiteLandRepository_CreateAndGet(t *testing.T) {
	// Подготовка
	repo := NewSQLiteLandRepository(setupTestDB(t))
	ctx := context.Background()
	entry := newEntry("user-1", "Delta Basin")

	// Действие
	require.NoError(t, repo.Create(ctx, entry))
	got, err := repo.GetByID(ctx, "user-1", entry.ID)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "Delta Basin", got.LocationName)
	assert.Equal(t, models.RiskModerate, got.DegradationLevel)
	assert.Equal(t, "Monitor regularly.", got.Recommendation)
	assert.Equal(t, entry.Readings(), got.Readings())
	assert.False(t, got.AlertSent)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteLandRepository_GetByID_OwnerScoped(t *testing.T) {
	repo := NewSQLiteLandRepository(setupTestDB(t))
	ctx := context.Background()
	entry := newEntry("user-1", "Delta Basin")
	require.NoError(t, repo.Create(ctx, entry))

	_, err := repo.GetByID(ctx, "user-2", entry.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByID(ctx, "user-1", uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLiteLandRepository_ListByUser_NewestFirst(t *testing.T) {
	// Подготовка
	repo := NewSQLiteLandRepository(setupTestDB(t))
	ctx := context.Background()
	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(ctx, newEntry("user-1", name)))
	}
	require.NoError(t, repo.Create(ctx, newEntry("user-2", "Foreign")))

	// Действие
	entries, err := repo.ListByUser(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Third", entries[0].LocationName)
	assert.Equal(t, "Second", entries[1].LocationName)
	assert.Equal(t, "First", entries[2].LocationName)
}

func TestSQLiteLandRepository_ListByUser_Empty(t *testing.T) {
	repo := NewSQLiteLandRepository(setupTestDB(t))

	entries, err := repo.ListByUser(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSQLiteLandRepository_MarkAlertSent(t *testing.T) {
	repo := NewSQLiteLandRepository(setupTestDB(t))
	ctx := context.Background()
	entry := newEntry("user-1", "Delta Basin")
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.MarkAlertSent(ctx, "user-1", entry.ID))
	got, err := repo.GetByID(ctx, "user-1", entry.ID)
	require.NoError(t, err)
	assert.True(t, got.AlertSent)

	// Повторная отметка не запрещена
	require.NoError(t, repo.MarkAlertSent(ctx, "user-1", entry.ID))

	assert.ErrorIs(t, repo.MarkAlertSent(ctx, "user-2", entry.ID), models.ErrNotFound)
}

func TestSQLiteFavoriteRepository_CreateDuplicate(t *testing.T) {
	// Подготовка
	repo := NewSQLiteFavoriteRepository(setupTestDB(t))
	ctx := context.Background()
	first := &models.FavoriteLocation{UserID: "user-1", Name: "Delta Basin", Latitude: 9.05, Longitude: 38.74}
	again := &models.FavoriteLocation{UserID: "user-1", Name: "Renamed", Latitude: 9.05, Longitude: 38.74}
	other := &models.FavoriteLocation{UserID: "user-2", Name: "Delta Basin", Latitude: 9.05, Longitude: 38.74}

	// Действие и проверки
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.ErrorIs(t, repo.Create(ctx, again), models.ErrDuplicate)
	require.NoError(t, repo.Create(ctx, other))
}

func TestSQLiteFavoriteRepository_ListAndDelete(t *testing.T) {
	// Подготовка
	repo := NewSQLiteFavoriteRepository(setupTestDB(t))
	ctx := context.Background()
	a := &models.FavoriteLocation{UserID: "user-1", Name: "A", Latitude: 1, Longitude: 1}
	b := &models.FavoriteLocation{UserID: "user-1", Name: "B", Latitude: 2, Longitude: 2}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	// Действие
	favorites, err := repo.ListByUser(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "B", favorites[0].Name)
	assert.Equal(t, b.ID, favorites[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, "user-2", a.ID), models.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "user-1", a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "user-1", a.ID), models.ErrNotFound)

	favorites, err = repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "B", favorites[0].Name)
}
