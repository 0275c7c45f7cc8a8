package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gnroof/internal/models"
)

type ControlLogSQLite struct {
	db *sql.DB
}

func NewControlLogSQLite(db *sql.DB) *ControlLogSQLite { return &ControlLogSQLite{db: db} }

// rowid keeps insertion order; ids are uuids.
const selectControlLogSQL = `
	SELECT id, occurred_at, actor, command, cause
	FROM control_log ORDER BY rowid DESC LIMIT ?
`

// List returns the newest limit entries, oldest first.
func (r *ControlLogSQLite) List(ctx context.Context, limit int) ([]models.ControlLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectControlLogSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select control log: %w", err)
	}
	defer rows.Close()

	out := make([]models.ControlLogEntry, 0, limit)
	for rows.Next() {
		var (
			e     models.ControlLogEntry
			cause sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Actor, &e.Command, &cause); err != nil {
			return nil, fmt.Errorf("scan control log: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		if cause.Valid {
			e.Cause = models.Cause(cause.String)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}
