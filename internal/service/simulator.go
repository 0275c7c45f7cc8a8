package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"gnroof/internal/logger"
	"gnroof/internal/models"
)

// Demo feed parameters: each tick draws uniformly from base ± spread.
const (
	SimBaseTempC       = 22.0
	SimTempSpreadC     = 3.0
	SimBaseHumidity    = 52.0
	SimHumiditySpread  = 5.0
	DefaultSimInterval = 5 * time.Second
)

// readingSubmitter is the slice of the ingestion gateway the producers need.
type readingSubmitter interface {
	SubmitReading(ctx context.Context, tempC, humidity float64) (models.HazardVerdict, error)
}

// SimulatorService feeds synthetic readings for demos.
type SimulatorService struct {
	ingest readingSubmitter
	rnd    *rand.Rand
	log    *logger.Logger
}

func NewSimulatorService(ingest readingSubmitter, log *logger.Logger) *SimulatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{
		ingest: ingest,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:    log,
	}
}

// Run submits one reading per tick until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultSimInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

func (s *SimulatorService) step(ctx context.Context) {
	temp, hum := s.sample()
	v, err := s.ingest.SubmitReading(ctx, temp, hum)
	if err != nil {
		s.log.Errorw("simulator_submit_failed", "err", err)
		return
	}
	s.log.Debugw("simulator_reading", "temp", temp, "hum", hum, "hazard", v.Active)
}

func (s *SimulatorService) sample() (tempC, humidity float64) {
	tempC = round1(SimBaseTempC + (s.rnd.Float64()*2-1)*SimTempSpreadC)
	humidity = round1(SimBaseHumidity + (s.rnd.Float64()*2-1)*SimHumiditySpread)
	return tempC, humidity
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
