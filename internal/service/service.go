package service

import (
	"context"
	"time"

	"gnroof/internal/logger"
	"gnroof/internal/models"
	"gnroof/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// Hazard evaluates the current hazard picture without writing.
type Hazard interface {
	Evaluate(ctx context.Context, in HazardInputs) (models.HazardVerdict, error)
}

// Vent is the vent state machine.
type Vent interface {
	RequestVent(ctx context.Context, target, actor string) (VentResult, error)
	AutoEvaluateAndClose(ctx context.Context, v models.HazardVerdict) (bool, error)
	ClearHazards(ctx context.Context, actor string) error
}

// Ingestion is the write path used by handlers, MQTT and the producers.
type Ingestion interface {
	SubmitReading(ctx context.Context, tempC, humidity float64) (models.HazardVerdict, error)
	SetHazardToggle(ctx context.Context, kind models.HazardKind, on bool) (models.HazardVerdict, error)
	IssueVentCommand(ctx context.Context, command, actor string) (VentResult, error)
	ResetHazards(ctx context.Context, actor string) (models.HazardVerdict, error)
}

// Monitoring exposes the read-only dashboard snapshot.
type Monitoring interface {
	GetStatus(ctx context.Context) (Status, error)
}

// History exposes the append-only logs.
type History interface {
	Readings(ctx context.Context, limit int) ([]models.Reading, error)
	HazardSamples(ctx context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error)
	ControlLog(ctx context.Context, limit int) ([]models.ControlLogEntry, error)
}

// Simulator runs the demo feed. Stop via context cancellation.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Weather pulls outdoor conditions into the reading stream.
type Weather interface {
	Pull(ctx context.Context, q WeatherQuery) (WeatherPull, error)
	Poll(ctx context.Context, tick time.Duration, q WeatherQuery)
}

type Service struct {
	Authorization
	Hazard
	Vent
	Ingestion
	Monitoring
	History
	Simulator
	Weather
}

// Deps carries everything NewService needs besides the repositories.
type Deps struct {
	SigningKey     string
	TokenTTL       time.Duration
	Notifier       VentNotifier
	WeatherFetcher WeatherFetcher
	WeatherDefault WeatherQuery
	WeatherTimeout time.Duration
	Log            *logger.Logger
}

func NewService(repos *repository.Repository, d Deps) *Service {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	hazard := NewHazardService(repos.StateRepo, repos.ReadingRepo)
	vent := NewVentService(repos.StateRepo, d.Notifier, d.Log.Named("vent"))
	ingest := NewIngestionService(repos.StateRepo, repos.ReadingRepo, hazard, vent)

	return &Service{
		Authorization: NewAuthService(repos.Auth, d.SigningKey, d.TokenTTL),
		Hazard:        hazard,
		Vent:          vent,
		Ingestion:     ingest,
		Monitoring:    NewMonitoringService(repos.StateRepo, repos.ReadingRepo),
		History:       NewHistoryService(repos.ReadingRepo, repos.ControlLogRepo, repos.HazardLogRepo),
		Simulator:     NewSimulatorService(ingest, d.Log.Named("simulator")),
		Weather:       NewWeatherService(d.WeatherFetcher, ingest, d.WeatherDefault, d.WeatherTimeout, d.Log.Named("weather")),
	}
}
