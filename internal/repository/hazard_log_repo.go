package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gnroof/internal/models"
)

type HazardLogSQLite struct {
	db *sql.DB
}

func NewHazardLogSQLite(db *sql.DB) *HazardLogSQLite { return &HazardLogSQLite{db: db} }

const selectHazardSamplesSQL = `
	SELECT id, value, recorded_at FROM hazard_log
	WHERE kind = ? ORDER BY id DESC LIMIT ?
`

// List returns the newest limit samples of one hazard, oldest first.
func (r *HazardLogSQLite) List(ctx context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error) {
	rows, err := r.db.QueryContext(ctx, selectHazardSamplesSQL, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("select %s samples: %w", kind, err)
	}
	defer rows.Close()

	out := make([]models.HazardSample, 0, limit)
	for rows.Next() {
		s := models.HazardSample{Kind: kind}
		if err := rows.Scan(&s.ID, &s.On, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan %s sample: %w", kind, err)
		}
		s.RecordedAt = s.RecordedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}
