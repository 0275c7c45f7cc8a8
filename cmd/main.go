package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "gnroof/docs"
	"gnroof/internal/config"
	"gnroof/internal/handlers"
	"gnroof/internal/logger"
	"gnroof/internal/mqtt"
	"gnroof/internal/repository"
	"gnroof/internal/repository/db"
	"gnroof/internal/server"
	"gnroof/internal/service"
	"gnroof/internal/weather"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// @title                       GN Roof API
// @version                     1.0
// @description                 Roof vent control with rain, smoke and humidity auto-close.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatalw("error reading config", "err", err)
	}
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := repository.NewRepository(sqlDB)
	topics := mqtt.NewTopics(cfg.MQTT.TopicPrefix)

	// The notifier needs the broker before services exist; subscriptions need
	// services, so they are attached after wiring.
	var (
		broker   *mqtt.Client
		notifier service.VentNotifier = service.NopNotifier{}
		onConn   = make(chan paho.Client, 1)
	)
	if cfg.MQTT.Enabled {
		broker, err = mqtt.Connect(cfg.MQTT, log.Named("mqtt"), func(c paho.Client) {
			select {
			case onConn <- c:
			default:
			}
		})
		if err != nil {
			log.Fatalw("failed to connect mqtt", "err", err)
		}
		defer broker.Close()
		notifier = mqtt.NewVentNotifier(mqtt.NewPahoPublisher(broker.Native(), cfg.MQTT.HandlerTimeout), topics)
	}

	weatherDefaults := service.WeatherQuery{City: cfg.Weather.City, APIKey: cfg.Weather.APIKey}
	services := service.NewService(repos, service.Deps{
		SigningKey:     cfg.Auth.SigningKey,
		TokenTTL:       cfg.Auth.TokenTTL,
		Notifier:       notifier,
		WeatherFetcher: weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout),
		WeatherDefault: weatherDefaults,
		WeatherTimeout: cfg.Weather.Timeout,
		Log:            log,
	})

	if broker != nil {
		sub := mqtt.NewSubscriber(ctx, services.Ingestion, topics, cfg.MQTT.HandlerTimeout, log.Named("mqtt"))
		go resubscribe(ctx, sub, onConn, cfg, log)
	}
	if cfg.Simulator.Enabled {
		go services.Simulator.Run(ctx, cfg.Simulator.Tick)
	}
	if cfg.Weather.Enabled {
		go services.Weather.Poll(ctx, cfg.Weather.Tick, weatherDefaults)
	}

	apiHandler := handlers.NewHandler(services, log.Named("http"))
	srv := server.New(cfg.HTTP)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, cfg.HTTP, log)
}

// resubscribe attaches the ingest handlers on every (re)connect.
func resubscribe(ctx context.Context, sub *mqtt.Subscriber, onConn <-chan paho.Client, cfg *config.Config, log *logger.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-onConn:
			if err := sub.SubscribeAll(c, cfg.MQTT.ConnectTimeout); err != nil {
				log.Errorw("mqtt_subscribe_failed", "err", err)
			}
		}
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, cfg config.HTTPConfig, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
