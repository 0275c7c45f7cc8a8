package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gnroof/internal/logger"
	"gnroof/internal/models"
	"gnroof/internal/weather"
)

const defaultWeatherTimeout = 5 * time.Second

// WeatherFetcher looks up current conditions.
type WeatherFetcher interface {
	Current(ctx context.Context, city, apiKey string) (models.WeatherObservation, error)
}

// WeatherQuery selects a city. Empty fields fall back to the configured defaults.
type WeatherQuery struct {
	City   string `json:"city"`
	APIKey string `json:"key"`
}

// WeatherPull is a fetched observation plus the verdict it produced.
type WeatherPull struct {
	Observation models.WeatherObservation `json:"observation"`
	Verdict     models.HazardVerdict      `json:"verdict"`
}

type WeatherService struct {
	fetcher  WeatherFetcher
	ingest   readingSubmitter
	defaults WeatherQuery
	timeout  time.Duration
	log      *logger.Logger
}

func NewWeatherService(fetcher WeatherFetcher, ingest readingSubmitter, defaults WeatherQuery, timeout time.Duration, log *logger.Logger) *WeatherService {
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &WeatherService{fetcher: fetcher, ingest: ingest, defaults: defaults, timeout: timeout, log: log}
}

// Pull fetches current weather and submits it as a reading.
func (s *WeatherService) Pull(ctx context.Context, q WeatherQuery) (WeatherPull, error) {
	if s.fetcher == nil {
		return WeatherPull{}, fmt.Errorf("%w: no weather client configured", ErrWeatherUnavailable)
	}
	city := firstNonEmpty(q.City, s.defaults.City)
	key := firstNonEmpty(q.APIKey, s.defaults.APIKey)
	if key == "" {
		return WeatherPull{}, invalid("key", "no weather api key given or configured")
	}
	if city == "" {
		return WeatherPull{}, invalid("city", "no city given or configured")
	}

	fctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	obs, err := s.fetcher.Current(fctx, city, key)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrMissingAPIKey):
			return WeatherPull{}, invalid("key", "%v", err)
		case errors.Is(err, weather.ErrMissingCity):
			return WeatherPull{}, invalid("city", "%v", err)
		}
		return WeatherPull{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	v, err := s.ingest.SubmitReading(ctx, obs.TempC, obs.Humidity)
	if err != nil {
		return WeatherPull{Observation: obs}, err
	}
	return WeatherPull{Observation: obs, Verdict: v}, nil
}

// Poll pulls q every tick until ctx is canceled.
func (s *WeatherService) Poll(ctx context.Context, tick time.Duration, q WeatherQuery) {
	if tick <= 0 {
		tick = 10 * time.Minute
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p, err := s.Pull(ctx, q)
			if err != nil {
				s.log.Warnw("weather_poll_failed", "err", err)
				continue
			}
			s.log.Infow("weather_reading", "city", p.Observation.City, "temp", p.Observation.TempC, "hum", p.Observation.Humidity)
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
