package service

import (
	"context"

	"gnroof/internal/models"
	"gnroof/internal/repository"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 1000
)

// HistoryService serves the append-only logs, oldest entry first.
type HistoryService struct {
	readingRepo    repository.ReadingRepo
	controlLogRepo repository.ControlLogRepo
	hazardLogRepo  repository.HazardLogRepo
}

func NewHistoryService(readingRepo repository.ReadingRepo, controlLogRepo repository.ControlLogRepo, hazardLogRepo repository.HazardLogRepo) *HistoryService {
	return &HistoryService{
		readingRepo:    readingRepo,
		controlLogRepo: controlLogRepo,
		hazardLogRepo:  hazardLogRepo,
	}
}

func validateLimit(limit int) error {
	if limit <= 0 || limit > MaxHistoryLimit {
		return invalid("limit", "must be between 1 and %d", MaxHistoryLimit)
	}
	return nil
}

func (s *HistoryService) Readings(ctx context.Context, limit int) ([]models.Reading, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	out, err := s.readingRepo.List(ctx, limit)
	return out, storeErr("list readings", err)
}

func (s *HistoryService) HazardSamples(ctx context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error) {
	if _, ok := models.ParseHazardKind(string(kind)); !ok {
		return nil, invalid("hazard", "unknown kind %q", kind)
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	out, err := s.hazardLogRepo.List(ctx, kind, limit)
	return out, storeErr("list "+string(kind)+" samples", err)
}

func (s *HistoryService) ControlLog(ctx context.Context, limit int) ([]models.ControlLogEntry, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	out, err := s.controlLogRepo.List(ctx, limit)
	return out, storeErr("list control log", err)
}
