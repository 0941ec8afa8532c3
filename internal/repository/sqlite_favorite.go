package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service"
)

type SQLiteFavoriteRepository struct {
	s *SQLiteDB
}

func NewSQLiteFavoriteRepository(s *SQLiteDB) service.FavoriteRepository {
	return &SQLiteFavoriteRepository{s: s}
}

func (r *SQLiteFavoriteRepository) Create(ctx context.Context, fav *models.FavoriteLocation) error {
	id := uuid.New()
	createdAt := r.s.now()
	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO favorite_locations (id, user_id, name, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), fav.UserID, fav.Name, fav.Latitude, fav.Longitude, toUnixNano(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("favorite location: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create favorite location: %w", err)
	}
	fav.ID = id
	fav.CreatedAt = createdAt
	return nil
}

func (r *SQLiteFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*models.FavoriteLocation, error) {
	rows, err := r.s.db.QueryContext(ctx, `
		SELECT id, user_id, name, latitude, longitude, created_at
		FROM favorite_locations
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite locations: %w", err)
	}
	defer rows.Close()

	favorites := make([]*models.FavoriteLocation, 0)
	for rows.Next() {
		var (
			fav       models.FavoriteLocation
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &fav.UserID, &fav.Name, &fav.Latitude, &fav.Longitude, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite location row: %w", err)
		}
		if fav.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid favorite location id %q: %w", id, err)
		}
		fav.CreatedAt = fromUnixNano(createdAt)
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return favorites, nil
}

func (r *SQLiteFavoriteRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM favorite_locations WHERE id = ? AND user_id = ?`, id.String(), userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite location: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete favorite location: %w", err)
	}
	if affected == 0 {
		return notFound("favorite location", id)
	}
	return nil
}
