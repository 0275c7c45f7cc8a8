package service

import (
	"context"
	"time"

	"gnroof/internal/models"
	"gnroof/internal/repository"
)

// Status is the dashboard snapshot.
type Status struct {
	Vent           models.VentState     `json:"vent"`
	VentUpdated    time.Time            `json:"vent_updated"`
	Rain           bool                 `json:"rain"`
	Smoke          bool                 `json:"smoke"`
	Reading        *models.Reading      `json:"reading"`
	Verdict        models.HazardVerdict `json:"verdict"`
	LastAutoHazard *models.AutoHazard   `json:"last_auto_hazard,omitempty"`
}

type MonitoringService struct {
	stateRepo   repository.StateRepo
	readingRepo repository.ReadingRepo
}

func NewMonitoringService(stateRepo repository.StateRepo, readingRepo repository.ReadingRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo, readingRepo: readingRepo}
}

// GetStatus reads state and latest reading once and evaluates from those.
func (s *MonitoringService) GetStatus(ctx context.Context) (Status, error) {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return Status{}, storeErr("load state", err)
	}
	latest, err := s.readingRepo.Latest(ctx)
	if err != nil {
		return Status{}, storeErr("load latest reading", err)
	}

	var hum *float64
	if latest != nil {
		hum = &latest.Humidity
	}
	verdict, err := EvaluateHazards(hum, st.Rain, st.Smoke)
	if err != nil {
		return Status{}, err
	}

	return Status{
		Vent:           st.Vent,
		VentUpdated:    st.UpdatedAt,
		Rain:           st.Rain,
		Smoke:          st.Smoke,
		Reading:        latest,
		Verdict:        verdict,
		LastAutoHazard: st.LastAutoHazard,
	}, nil
}
