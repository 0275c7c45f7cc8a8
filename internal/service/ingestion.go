package service

import (
	"context"
	"math"
	"time"

	"gnroof/internal/models"
	"gnroof/internal/repository"
)

// IngestionService is the only way readings, toggles and vent commands reach
// the vent state machine.
type IngestionService struct {
	stateRepo   repository.StateRepo
	readingRepo repository.ReadingRepo
	hazard      Hazard
	vent        Vent
	now         func() time.Time
}

func NewIngestionService(stateRepo repository.StateRepo, readingRepo repository.ReadingRepo, hazard Hazard, vent Vent) *IngestionService {
	return &IngestionService{
		stateRepo:   stateRepo,
		readingRepo: readingRepo,
		hazard:      hazard,
		vent:        vent,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SubmitReading stores a reading, then evaluates with its humidity and
// closes the vent if needed.
func (s *IngestionService) SubmitReading(ctx context.Context, tempC, humidity float64) (models.HazardVerdict, error) {
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return models.HazardVerdict{}, invalid("temperature", "must be a finite number")
	}
	if err := validateHumidity(humidity); err != nil {
		return models.HazardVerdict{}, err
	}

	if _, err := s.readingRepo.Append(ctx, models.Reading{
		RecordedAt:   s.now(),
		TemperatureC: tempC,
		Humidity:     humidity,
	}); err != nil {
		return models.HazardVerdict{}, storeErr("append reading", err)
	}

	return s.evaluateAndClose(ctx, HazardInputs{Humidity: &humidity})
}

// SetHazardToggle writes a toggle plus its history sample, then evaluates
// with the written value so a stale read cannot mask it.
func (s *IngestionService) SetHazardToggle(ctx context.Context, kind models.HazardKind, on bool) (models.HazardVerdict, error) {
	var in HazardInputs
	switch kind {
	case models.HazardRain:
		in.Rain = &on
	case models.HazardSmoke:
		in.Smoke = &on
	default:
		return models.HazardVerdict{}, invalid("hazard", "unknown kind %q", kind)
	}

	if err := s.stateRepo.SetToggle(ctx, kind, on, s.now()); err != nil {
		return models.HazardVerdict{}, storeErr("set "+string(kind)+" toggle", err)
	}

	return s.evaluateAndClose(ctx, in)
}

// IssueVentCommand delegates an operator command to the vent state machine.
func (s *IngestionService) IssueVentCommand(ctx context.Context, command, actor string) (VentResult, error) {
	return s.vent.RequestVent(ctx, command, actor)
}

// ResetHazards clears the toggles and re-evaluates: humidity may still be high.
func (s *IngestionService) ResetHazards(ctx context.Context, actor string) (models.HazardVerdict, error) {
	if err := s.vent.ClearHazards(ctx, actor); err != nil {
		return models.HazardVerdict{}, err
	}
	off := false
	return s.evaluateAndClose(ctx, HazardInputs{Rain: &off, Smoke: &off})
}

func (s *IngestionService) evaluateAndClose(ctx context.Context, in HazardInputs) (models.HazardVerdict, error) {
	v, err := s.hazard.Evaluate(ctx, in)
	if err != nil {
		return models.HazardVerdict{}, err
	}
	if _, err := s.vent.AutoEvaluateAndClose(ctx, v); err != nil {
		return v, err
	}
	return v, nil
}
