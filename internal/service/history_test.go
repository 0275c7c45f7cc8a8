package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gnroof/internal/models"
)

func newTestHistory(store *memStore) *HistoryService {
	return NewHistoryService(store, controlLogView{store}, hazardLogView{store})
}

func TestHistory_LimitValidation(t *testing.T) {
	svc := newTestHistory(newMemStore())
	ctx := context.Background()

	for _, limit := range []int{0, -1, MaxHistoryLimit + 1} {
		if _, err := svc.Readings(ctx, limit); !errors.Is(err, ErrValidation) {
			t.Fatalf("Readings(%d): got %v, want ErrValidation", limit, err)
		}
		if _, err := svc.ControlLog(ctx, limit); !errors.Is(err, ErrValidation) {
			t.Fatalf("ControlLog(%d): got %v, want ErrValidation", limit, err)
		}
		if _, err := svc.HazardSamples(ctx, models.HazardRain, limit); !errors.Is(err, ErrValidation) {
			t.Fatalf("HazardSamples(%d): got %v, want ErrValidation", limit, err)
		}
	}
	if _, err := svc.HazardSamples(ctx, "hail", 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown kind: got %v, want ErrValidation", err)
	}
}

func TestHistory_ReadingsOldestFirst(t *testing.T) {
	store := newMemStore()
	for i := 1; i <= 5; i++ {
		store.readings = append(store.readings, models.Reading{ID: int64(i), Humidity: float64(i)})
	}
	got, err := newTestHistory(store).Readings(context.Background(), 3)
	if err != nil {
		t.Fatalf("Readings: %v", err)
	}
	if len(got) != 3 || got[0].ID != 3 || got[2].ID != 5 {
		t.Fatalf("got %+v, want ids 3..5", got)
	}
}

func TestHistory_HazardSamplesByKind(t *testing.T) {
	store := newMemStore()
	store.samples = []models.HazardSample{
		{Kind: models.HazardRain, On: false},
		{Kind: models.HazardSmoke, On: true},
		{Kind: models.HazardRain, On: true},
	}
	got, err := newTestHistory(store).HazardSamples(context.Background(), models.HazardRain, DefaultHistoryLimit)
	if err != nil {
		t.Fatalf("HazardSamples: %v", err)
	}
	if len(got) != 2 || got[0].On || !got[1].On {
		t.Fatalf("got %+v", got)
	}
}

func TestMonitoring_GetStatus(t *testing.T) {
	store := newMemStore()
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	store.state = models.State{
		Vent:           models.VentClose,
		Rain:           true,
		UpdatedAt:      at,
		LastAutoHazard: &models.AutoHazard{Cause: models.CauseRain, At: at},
	}
	store.readings = []models.Reading{{ID: 1, TemperatureC: 21, Humidity: 40}}

	st, err := NewMonitoringService(store, store).GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.Vent != models.VentClose || !st.Rain || st.Smoke || !st.VentUpdated.Equal(at) {
		t.Fatalf("got %+v", st)
	}
	if st.Reading == nil || st.Reading.TemperatureC != 21 {
		t.Fatalf("reading got %+v", st.Reading)
	}
	if !st.Verdict.Active || st.Verdict.Cause != models.CauseRain {
		t.Fatalf("verdict got %+v", st.Verdict)
	}
	if st.LastAutoHazard == nil || st.LastAutoHazard.Cause != models.CauseRain {
		t.Fatalf("last auto hazard got %+v", st.LastAutoHazard)
	}
}

func TestMonitoring_GetStatusStoreError(t *testing.T) {
	store := newMemStore()
	store.latestErr = errors.New("boom")
	_, err := NewMonitoringService(store, store).GetStatus(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("got %v, want ErrStoreUnavailable", err)
	}
}
