package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gnroof/internal/models"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: db} }

const (
	insertReadingSQL  = `INSERT INTO readings (recorded_at, temp_c, humidity) VALUES (?, ?, ?)`
	selectReadingsSQL = `SELECT id, recorded_at, temp_c, humidity FROM readings ORDER BY id DESC LIMIT ?`
)

// Append stores a reading and returns it with its ID and UTC timestamp set.
func (r *ReadingSQLite) Append(ctx context.Context, rd models.Reading) (models.Reading, error) {
	if rd.RecordedAt.IsZero() {
		rd.RecordedAt = time.Now()
	}
	rd.RecordedAt = rd.RecordedAt.UTC()

	res, err := r.db.ExecContext(ctx, insertReadingSQL, rd.RecordedAt, rd.TemperatureC, rd.Humidity)
	if err != nil {
		return models.Reading{}, fmt.Errorf("insert reading: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Reading{}, fmt.Errorf("get last insert id for reading: %w", err)
	}
	rd.ID = id
	return rd, nil
}

// Latest returns the most recent reading, or (nil, nil) if there is none.
func (r *ReadingSQLite) Latest(ctx context.Context) (*models.Reading, error) {
	var rd models.Reading
	err := r.db.QueryRowContext(ctx, selectReadingsSQL, 1).
		Scan(&rd.ID, &rd.RecordedAt, &rd.TemperatureC, &rd.Humidity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select latest reading: %w", err)
	}
	rd.RecordedAt = rd.RecordedAt.UTC()
	return &rd, nil
}

// List returns the newest limit readings, oldest first.
func (r *ReadingSQLite) List(ctx context.Context, limit int) ([]models.Reading, error) {
	rows, err := r.db.QueryContext(ctx, selectReadingsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select readings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Reading, 0, limit)
	for rows.Next() {
		var rd models.Reading
		if err := rows.Scan(&rd.ID, &rd.RecordedAt, &rd.TemperatureC, &rd.Humidity); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		rd.RecordedAt = rd.RecordedAt.UTC()
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}
