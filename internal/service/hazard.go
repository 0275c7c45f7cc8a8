package service

import (
	"context"
	"math"

	"gnroof/internal/models"
	"gnroof/internal/repository"
)

// HumidityHighThreshold is inclusive: 85.0 %RH already counts as high.
const HumidityHighThreshold = 85.0

// EvaluateHazards maps humidity and the two toggles to a verdict.
// A nil humidity never counts as high. Cause precedence is smoke > rain > humidity.
func EvaluateHazards(humidity *float64, rain, smoke bool) (models.HazardVerdict, error) {
	if humidity != nil {
		if err := validateHumidity(*humidity); err != nil {
			return models.HazardVerdict{}, err
		}
	}

	v := models.HazardVerdict{
		Rain:         rain,
		Smoke:        smoke,
		HumidityHigh: humidity != nil && *humidity >= HumidityHighThreshold,
	}
	v.Active = v.Rain || v.Smoke || v.HumidityHigh

	switch {
	case v.Smoke:
		v.Cause = models.CauseSmoke
	case v.Rain:
		v.Cause = models.CauseRain
	case v.HumidityHigh:
		v.Cause = models.CauseHumidity
	}
	return v, nil
}

func validateHumidity(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return invalid("humidity", "must be a finite number")
	}
	if h < 0 || h > 100 {
		return invalid("humidity", "%.1f outside 0..100", h)
	}
	return nil
}

// HazardInputs overrides evaluator inputs. A nil field is read from the store:
// toggles from the state row, humidity from the most recent reading.
type HazardInputs struct {
	Humidity *float64
	Rain     *bool
	Smoke    *bool
}

type HazardService struct {
	stateRepo   repository.StateRepo
	readingRepo repository.ReadingRepo
}

func NewHazardService(stateRepo repository.StateRepo, readingRepo repository.ReadingRepo) *HazardService {
	return &HazardService{stateRepo: stateRepo, readingRepo: readingRepo}
}

// Evaluate fills omitted inputs from storage and evaluates. It never writes.
func (s *HazardService) Evaluate(ctx context.Context, in HazardInputs) (models.HazardVerdict, error) {
	if in.Rain == nil || in.Smoke == nil {
		st, err := s.stateRepo.Load(ctx)
		if err != nil {
			return models.HazardVerdict{}, storeErr("load state", err)
		}
		if in.Rain == nil {
			in.Rain = &st.Rain
		}
		if in.Smoke == nil {
			in.Smoke = &st.Smoke
		}
	}

	if in.Humidity == nil {
		latest, err := s.readingRepo.Latest(ctx)
		if err != nil {
			return models.HazardVerdict{}, storeErr("load latest reading", err)
		}
		if latest != nil {
			in.Humidity = &latest.Humidity
		}
	}

	return EvaluateHazards(in.Humidity, *in.Rain, *in.Smoke)
}
