package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/auth"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// FavoriteRepository определяет контракт для хранения избранных точек
type FavoriteRepository interface {
	Create(ctx context.Context, fav *models.FavoriteLocation) error
	ListByUser(ctx context.Context, userID string) ([]*models.FavoriteLocation, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// FavoriteService определяет контракт для управления избранными точками
type FavoriteService interface {
	ListFavorites(ctx context.Context) ([]*models.FavoriteLocation, error)
	AddFavorite(ctx context.Context, name string, lat, lon float64) (*models.FavoriteLocation, error)
	RemoveFavorite(ctx context.Context, id uuid.UUID) error
}

type favoriteService struct {
	repo   FavoriteRepository
	logger *logrus.Logger
}

func NewFavoriteService(repo FavoriteRepository, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		repo:   repo,
		logger: logger,
	}
}

// ListFavorites возвращает избранные точки пользователя
func (s *favoriteService) ListFavorites(ctx context.Context) ([]*models.FavoriteLocation, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}

	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "favorite",
			"method":  "ListFavorites",
			"user_id": userID,
		}).WithError(err).Error("Failed to list favorites in repository")
		return nil, fmt.Errorf("service: could not list favorites: %w", err)
	}
	return favorites, nil
}

// AddFavorite сохраняет точку; повтор координат у того же пользователя даёт models.ErrDuplicate
func (s *favoriteService) AddFavorite(ctx context.Context, name string, lat, lon float64) (*models.FavoriteLocation, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}
	name = strings.TrimSpace(name)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "favorite",
		"method":    "AddFavorite",
		"user_id":   userID,
		"latitude":  lat,
		"longitude": lon,
	})

	if err := validateLocation(name, lat, lon); err != nil {
		return nil, err
	}

	fav := &models.FavoriteLocation{
		UserID:    userID,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
	}
	if err := s.repo.Create(ctx, fav); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Warn("Favorite location already exists")
		} else {
			log.WithError(err).Error("Failed to create favorite in repository")
		}
		return nil, fmt.Errorf("service: could not add favorite: %w", err)
	}

	log.WithField("favorite_id", fav.ID).Info("Favorite location added")
	return fav, nil
}

// RemoveFavorite удаляет избранную точку пользователя
func (s *favoriteService) RemoveFavorite(ctx context.Context, id uuid.UUID) error {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return ErrAuthRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "favorite",
		"method":      "RemoveFavorite",
		"favorite_id": id,
	})

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		log.WithError(err).Warn("Failed to remove favorite")
		return fmt.Errorf("service: could not remove favorite: %w", err)
	}
	log.Info("Favorite location removed")
	return nil
}
