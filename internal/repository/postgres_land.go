package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service"
)

const landDataColumns = `
	id,
	user_id,
	location_name,
	latitude,
	longitude,
	vegetation_index,
	soil_moisture,
	temperature,
	rainfall,
	degradation_level,
	recommendation,
	flood_risk,
	drought_risk,
	alert_sent,
	created_at`

type LandRepository struct {
	db *pgxpool.Pool
}

func NewLandRepository(db *pgxpool.Pool) service.LandRepository {
	return &LandRepository{
		db: db,
	}
}

// Create сохраняет результат анализа; id и created_at выставляет бд
func (r *LandRepository) Create(ctx context.Context, entry *models.LandDataEntry) error {
	query := `
		INSERT INTO land_data (
			user_id, location_name, latitude, longitude,
			vegetation_index, soil_moisture, temperature, rainfall,
			degradation_level, recommendation, flood_risk, drought_risk
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, alert_sent, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.LocationName,
		entry.Latitude,
		entry.Longitude,
		entry.VegetationIndex,
		entry.SoilMoisture,
		entry.Temperature,
		entry.Rainfall,
		entry.DegradationLevel,
		entry.Recommendation,
		entry.FloodRisk,
		entry.DroughtRisk,
	).Scan(&entry.ID, &entry.AlertSent, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create land data entry: %w", err)
	}
	return nil
}

// GetByID возвращает запись владельца по UUID
func (r *LandRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.LandDataEntry, error) {
	query := `SELECT` + landDataColumns + `
		FROM land_data
		WHERE id = $1 AND user_id = $2;
	`
	entry, err := scanLandEntry(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("land data entry %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get land data entry by id: %w", err)
	}
	return entry, nil
}

// ListByUser возвращает записи пользователя, новые первыми
func (r *LandRepository) ListByUser(ctx context.Context, userID string) ([]*models.LandDataEntry, error) {
	query := `SELECT` + landDataColumns + `
		FROM land_data
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list land data: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LandDataEntry, 0)
	for rows.Next() {
		entry, err := scanLandEntry(rows)
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

// MarkAlertSent выставляет флаг отправленного оповещения
func (r *LandRepository) MarkAlertSent(ctx context.Context, userID string, id uuid.UUID) error {
	query := `
		UPDATE land_data SET alert_sent = TRUE
		WHERE id = $1 AND user_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark alert sent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("land data entry %s: %w", id, models.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLandEntry(row rowScanner) (*models.LandDataEntry, error) {
	entry := &models.LandDataEntry{}
	err := row.Scan(
		&entry.ID,
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
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
