package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFavoriteService(t *testing.T) (*favoriteService, *mocks.MockFavoriteRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockFavoriteRepository(ctrl)

	service := NewFavoriteService(repoMock, newTestLogger())
	return service.(*favoriteService), repoMock
}

func TestAddFavorite_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestFavoriteService(t)

	// Ожидания
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fav *models.FavoriteLocation) error {
			assert.Equal(t, testUserID, fav.UserID)
			assert.Equal(t, "Delta Basin", fav.Name)
			fav.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	fav, err := service.AddFavorite(userContext(), " Delta Basin ", 9.05, 38.74)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, fav.ID)
	assert.Equal(t, 9.05, fav.Latitude)
	assert.Equal(t, 38.74, fav.Longitude)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	// Подготовка
	service, repoMock := newTestFavoriteService(t)

	// Ожидания
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("favorite location: %w", models.ErrDuplicate)).
		Times(1)

	// Действие
	fav, err := service.AddFavorite(userContext(), "Delta Basin", 9.05, 38.74)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, fav)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestAddFavorite_InvalidInput(t *testing.T) {
	service, repoMock := newTestFavoriteService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AddFavorite(userContext(), "", 9.05, 38.74)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.AddFavorite(userContext(), "North Ridge", -95, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddFavorite_AuthRequired(t *testing.T) {
	service, _ := newTestFavoriteService(t)

	_, err := service.AddFavorite(context.Background(), "Delta Basin", 9.05, 38.74)

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestListFavorites(t *testing.T) {
	// Подготовка
	service, repoMock := newTestFavoriteService(t)
	favorites := []*models.FavoriteLocation{{ID: uuid.New(), Name: "Delta Basin"}}

	// Ожидания
	repoMock.EXPECT().ListByUser(gomock.Any(), testUserID).Return(favorites, nil)

	// Действие
	got, err := service.ListFavorites(userContext())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	service, repoMock := newTestFavoriteService(t)
	id := uuid.New()

	repoMock.EXPECT().Delete(gomock.Any(), testUserID, id).Return(models.ErrNotFound)

	err := service.RemoveFavorite(userContext(), id)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveFavorite_Success(t *testing.T) {
	service, repoMock := newTestFavoriteService(t)
	id := uuid.New()

	repoMock.EXPECT().Delete(gomock.Any(), testUserID, id).Return(nil)

	require.NoError(t, service.RemoveFavorite(userContext(), id))
}
