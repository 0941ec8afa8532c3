package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service"
)

type FavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) service.FavoriteRepository {
	return &FavoriteRepository{
		db: db,
	}
}

// Create сохраняет избранную точку; повтор (user_id, latitude, longitude) дает models.ErrDuplicate
func (r *FavoriteRepository) Create(ctx context.Context, fav *models.FavoriteLocation) error {
	query := `
		INSERT INTO favorite_locations (user_id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		fav.UserID,
		fav.Name,
		fav.Latitude,
		fav.Longitude,
	).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("favorite location: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create favorite location: %w", err)
	}
	return nil
}

// ListByUser возвращает избранные точки пользователя, новые первыми
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*models.FavoriteLocation, error) {
	query := `
		SELECT id, user_id, name, latitude, longitude, created_at
		FROM favorite_locations
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite locations: %w", err)
	}
	defer rows.Close()

	favorites := make([]*models.FavoriteLocation, 0)
	for rows.Next() {
		fav := &models.FavoriteLocation{}
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.Name, &fav.Latitude, &fav.Longitude, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite location row: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return favorites, nil
}

// Delete удаляет избранную точку владельца
func (r *FavoriteRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query := `DELETE FROM favorite_locations WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("favorite location %s: %w", id, models.ErrNotFound)
	}
	return nil
}
