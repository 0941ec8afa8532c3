package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/gaia_guard/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteDB - встроенное хранилище для запуска без Postgres и для тестов
type SQLiteDB struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// Одно соединение: у :memory: своя база на каждое соединение
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS land_data (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			location_name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			vegetation_index REAL NOT NULL,
			soil_moisture REAL NOT NULL,
			temperature REAL NOT NULL,
			rainfall REAL NOT NULL,
			degradation_level TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			flood_risk TEXT NOT NULL,
			drought_risk TEXT NOT NULL,
			alert_sent INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS favorite_locations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			created_at INTEGER NOT NULL,
			UNIQUE (user_id, latitude, longitude)
		);

		CREATE INDEX IF NOT EXISTS idx_land_data_user_created ON land_data(user_id, created_at);
		CREATE INDEX IF NOT EXISTS idx_favorite_locations_user ON favorite_locations(user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// created_at хранится в наносекундах Unix
func toUnixNano(t time.Time) int64 {
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func notFound(what string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", what, id, models.ErrNotFound)
}
