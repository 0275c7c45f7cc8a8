package repository

import (
	"context"
	"database/sql"
	"time"

	"gnroof/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo owns the singleton vent/toggle row. Every method that writes more
// than one table does so in a single transaction. Transition writes only the
// vent columns; the toggles belong to SetToggle and ResetHazards.
type StateRepo interface {
	Load(ctx context.Context) (models.State, error)
	Transition(ctx context.Context, s models.State, e models.ControlLogEntry) error
	SetToggle(ctx context.Context, kind models.HazardKind, on bool, at time.Time) error
	ResetHazards(ctx context.Context, e models.ControlLogEntry) ([]models.HazardKind, error)
}

type ReadingRepo interface {
	Append(ctx context.Context, r models.Reading) (models.Reading, error)
	Latest(ctx context.Context) (*models.Reading, error)
	List(ctx context.Context, limit int) ([]models.Reading, error)
}

type ControlLogRepo interface {
	List(ctx context.Context, limit int) ([]models.ControlLogEntry, error)
}

type HazardLogRepo interface {
	List(ctx context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error)
}

type Repository struct {
	StateRepo      StateRepo
	ReadingRepo    ReadingRepo
	ControlLogRepo ControlLogRepo
	HazardLogRepo  HazardLogRepo
	Auth           Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo:      NewStateSQLite(db),
		ReadingRepo:    NewReadingSQLite(db),
		ControlLogRepo: NewControlLogSQLite(db),
		HazardLogRepo:  NewHazardLogSQLite(db),
		Auth:           NewUserRepository(db),
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// reverse flips a newest-first page into oldest-first order.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
