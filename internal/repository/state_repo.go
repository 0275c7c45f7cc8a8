package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gnroof/internal/models"

	"github.com/google/uuid"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	ventStateRowID = 1

	// The toggle columns are only written on insert; on conflict the vent
	// write leaves them to SetToggle and ResetHazards.
	upsertVentSQL = `
		INSERT INTO vent_state (id, vent, rain, smoke, last_hazard_cause, last_hazard_at, updated_at)
		VALUES (?, ?, 0, 0, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			vent=excluded.vent,
			last_hazard_cause=excluded.last_hazard_cause,
			last_hazard_at=excluded.last_hazard_at,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT vent, rain, smoke, last_hazard_cause, last_hazard_at, updated_at
		FROM vent_state WHERE id=?
	`

	updateRainSQL  = `UPDATE vent_state SET rain=? WHERE id=?`
	updateSmokeSQL = `UPDATE vent_state SET smoke=? WHERE id=?`

	selectTogglesSQL = `SELECT rain, smoke FROM vent_state WHERE id=?`
	clearHazardsSQL  = `
		UPDATE vent_state
		SET rain=0, smoke=0, last_hazard_cause=NULL, last_hazard_at=NULL
		WHERE id=?
	`

	insertControlLogSQL = `
		INSERT INTO control_log (id, occurred_at, actor, command, cause)
		VALUES (?, ?, ?, ?, ?)
	`

	insertHazardSampleSQL = `INSERT INTO hazard_log (kind, value, recorded_at) VALUES (?, ?, ?)`
)

var errStateRowMissing = errors.New("vent_state row missing")

// Load fetches the singleton row. A missing row yields the seeded default
// (vent closed, no hazards).
func (r *StateSQLite) Load(ctx context.Context) (models.State, error) {
	var (
		s         models.State
		vent      string
		cause     sql.NullString
		hazardAt  sql.NullTime
		updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, selectStateSQL, ventStateRowID).
		Scan(&vent, &s.Rain, &s.Smoke, &cause, &hazardAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.State{Vent: models.VentClose}, nil
		}
		return models.State{}, fmt.Errorf("select vent state: %w", err)
	}

	s.Vent = models.VentState(vent)
	s.UpdatedAt = updatedAt.UTC()
	if cause.Valid && cause.String != "" {
		s.LastAutoHazard = &models.AutoHazard{Cause: models.Cause(cause.String)}
		if hazardAt.Valid {
			s.LastAutoHazard.At = hazardAt.Time.UTC()
		}
	}
	return s, nil
}

// Transition persists the vent position, its timestamp and the last auto
// hazard together with the control-log entry. s.Rain and s.Smoke are ignored
// so a toggle committed after s was loaded survives.
func (r *StateSQLite) Transition(ctx context.Context, s models.State, e models.ControlLogEntry) error {
	return r.inTx(ctx, "transition", func(tx *sql.Tx) error {
		if err := saveVent(ctx, tx, s); err != nil {
			return err
		}
		return insertControlLog(ctx, tx, e)
	})
}

// SetToggle flips one hazard toggle and appends the sample to its history.
func (r *StateSQLite) SetToggle(ctx context.Context, kind models.HazardKind, on bool, at time.Time) error {
	stmt := updateRainSQL
	if kind == models.HazardSmoke {
		stmt = updateSmokeSQL
	}
	return r.inTx(ctx, "set toggle", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, stmt, on, ventStateRowID)
		if err != nil {
			return fmt.Errorf("update %s toggle: %w", kind, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return errStateRowMissing
		}
		return insertHazardSample(ctx, tx, kind, on, at)
	})
}

// ResetHazards switches both toggles off, clears the last auto hazard, appends
// an off sample for every toggle that was on and writes the reset log entry.
// The toggles are read inside the transaction; the cleared kinds are returned.
func (r *StateSQLite) ResetHazards(ctx context.Context, e models.ControlLogEntry) ([]models.HazardKind, error) {
	var cleared []models.HazardKind
	err := r.inTx(ctx, "reset hazards", func(tx *sql.Tx) error {
		cleared = nil
		var rain, smoke bool
		err := tx.QueryRowContext(ctx, selectTogglesSQL, ventStateRowID).Scan(&rain, &smoke)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return insertControlLog(ctx, tx, e)
		case err != nil:
			return fmt.Errorf("select toggles: %w", err)
		}

		if _, err := tx.ExecContext(ctx, clearHazardsSQL, ventStateRowID); err != nil {
			return fmt.Errorf("clear hazards: %w", err)
		}
		if rain {
			cleared = append(cleared, models.HazardRain)
		}
		if smoke {
			cleared = append(cleared, models.HazardSmoke)
		}
		for _, kind := range cleared {
			if err := insertHazardSample(ctx, tx, kind, false, e.OccurredAt); err != nil {
				return err
			}
		}
		return insertControlLog(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}
	return cleared, nil
}

func (r *StateSQLite) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", op, err)
	}
	return nil
}

func saveVent(ctx context.Context, ex execer, s models.State) error {
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	var (
		cause    any
		hazardAt any
	)
	if s.LastAutoHazard != nil {
		cause = string(s.LastAutoHazard.Cause)
		hazardAt = s.LastAutoHazard.At.UTC()
	}

	_, err := ex.ExecContext(ctx, upsertVentSQL,
		ventStateRowID,
		string(s.Vent),
		cause,
		hazardAt,
		ts.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert vent state: %w", err)
	}
	return nil
}

func insertControlLog(ctx context.Context, ex execer, e models.ControlLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	var cause *string
	if e.Cause != "" {
		c := string(e.Cause)
		cause = &c
	}

	if _, err := ex.ExecContext(ctx, insertControlLogSQL,
		e.ID,
		e.OccurredAt.UTC(),
		e.Actor,
		e.Command,
		cause,
	); err != nil {
		return fmt.Errorf("insert control log: %w", err)
	}
	return nil
}

func insertHazardSample(ctx context.Context, ex execer, kind models.HazardKind, on bool, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	if _, err := ex.ExecContext(ctx, insertHazardSampleSQL, string(kind), on, at.UTC()); err != nil {
		return fmt.Errorf("insert %s sample: %w", kind, err)
	}
	return nil
}
