package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service"
)

type SQLiteLandRepository struct {
	s *SQLiteDB
}

func NewSQLiteLandRepository(s *SQLiteDB) service.LandRepository {
	return &SQLiteLandRepository{s: s}
}

func (r *SQLiteLandRepository) Create(ctx context.Context, entry *models.LandDataEntry) error {
	id := uuid.New()
	createdAt := r.s.now()
	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO land_data (
			id, user_id, location_name, latitude, longitude,
			vegetation_index, soil_moisture, temperature, rainfall,
			degradation_level, recommendation, flood_risk, drought_risk,
			alert_sent, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		id.String(),
		entry.UserID,
		entry.LocationName,
		entry.Latitude,
		entry.Longitude,
		entry.VegetationIndex,
		entry.SoilMoisture,
		entry.Temperature,
		entry.Rainfall,
		string(entry.DegradationLevel),
		entry.Recommendation,
		string(entry.FloodRisk),
		string(entry.DroughtRisk),
		toUnixNano(createdAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create land data entry: %w", err)
	}
	entry.ID = id
	entry.AlertSent = false
	entry.CreatedAt = createdAt
	return nil
}

func (r *SQLiteLandRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.LandDataEntry, error) {
	row := r.s.db.QueryRowContext(ctx, `SELECT`+landDataColumns+`
		FROM land_data
		WHERE id = ? AND user_id = ?`, id.String(), userID)
	entry, err := scanSQLiteLandEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("land data entry", id)
		}
		return nil, fmt.Errorf("failed to get land data entry by id: %w", err)
	}
	return entry, nil
}

func (r *SQLiteLandRepository) ListByUser(ctx context.Context, userID string) ([]*models.LandDataEntry, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT`+landDataColumns+`
		FROM land_data
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list land data: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LandDataEntry, 0)
	for rows.Next() {
		entry, err := scanSQLiteLandEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan land data row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

func (r *SQLiteLandRepository) MarkAlertSent(ctx context.Context, userID string, id uuid.UUID) error {
	res, err := r.s.db.ExecContext(ctx, `UPDATE land_data SET alert_sent = 1 WHERE id = ? AND user_id = ?`, id.String(), userID)
	if err != nil {
		return fmt.Errorf("failed to mark alert sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark alert sent: %w", err)
	}
	if affected == 0 {
		return notFound("land data entry", id)
	}
	return nil
}

func scanSQLiteLandEntry(row rowScanner) (*models.LandDataEntry, error) {
	var (
		entry     models.LandDataEntry
		id        string
		createdAt int64
	)
	err := row.Scan(
		&id,
		&entry.UserID,
		&entry.LocationName,
		&entry.Latitude,
		&entry.Longitude,
		&entry.VegetationIndex,
		&entry.SoilMoisture,
		&entry.Temperature,
		&entry.Rainfall,
		&entry.DegradationLevel,
		&entry.Recommendation,
		&entry.FloodRisk,
		&entry.DroughtRisk,
		&entry.AlertSent,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	if entry.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid land data id %q: %w", id, err)
	}
	entry.CreatedAt = fromUnixNano(createdAt)
	return &entry, nil
}
