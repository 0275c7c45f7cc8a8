package mqtt

import (
	"context"
	"fmt"
	"time"

	"gnroof/internal/logger"
	"gnroof/internal/models"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const defaultHandlerTimeout = 5 * time.Second

// Ingestor is the part of the ingestion gateway reachable over MQTT.
type Ingestor interface {
	SubmitReading(ctx context.Context, tempC, humidity float64) (models.HazardVerdict, error)
	SetHazardToggle(ctx context.Context, kind models.HazardKind, on bool) (models.HazardVerdict, error)
}

// Subscriber turns broker messages into ingestion calls. Malformed payloads
// are logged and dropped; each message gets its own bounded context.
type Subscriber struct {
	ingest  Ingestor
	topics  Topics
	timeout time.Duration
	log     *logger.Logger
	base    context.Context
}

func NewSubscriber(ctx context.Context, ingest Ingestor, topics Topics, timeout time.Duration, log *logger.Logger) *Subscriber {
	if timeout <= 0 {
		timeout = defaultHandlerTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Subscriber{ingest: ingest, topics: topics, timeout: timeout, log: log, base: ctx}
}

// Handlers maps each subscribed topic to its paho handler.
func (s *Subscriber) Handlers() map[string]paho.MessageHandler {
	return map[string]paho.MessageHandler{
		s.topics.Reading: s.handleReading,
		s.topics.Rain:    s.toggleHandler(models.HazardRain),
		s.topics.Smoke:   s.toggleHandler(models.HazardSmoke),
	}
}

// SubscribeAll registers every handler with QoS 1.
func (s *Subscriber) SubscribeAll(client paho.Client, wait time.Duration) error {
	for topic, h := range s.Handlers() {
		token := client.Subscribe(topic, 1, h)
		if !token.WaitTimeout(wait) {
			return fmt.Errorf("subscribe %s: timeout", topic)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		s.log.Infow("mqtt_subscribed", "topic", topic)
	}
	return nil
}

func (s *Subscriber) handleReading(_ paho.Client, msg paho.Message) {
	temp, hum, err := ParseReading(msg.Payload())
	if err != nil {
		s.log.Warnw("mqtt_payload_invalid", "topic", msg.Topic(), "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(s.base, s.timeout)
	defer cancel()
	if _, err := s.ingest.SubmitReading(ctx, temp, hum); err != nil {
		s.log.Errorw("mqtt_reading_rejected", "topic", msg.Topic(), "err", err)
	}
}

func (s *Subscriber) toggleHandler(kind models.HazardKind) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		on, err := ParseToggle(msg.Payload())
		if err != nil {
			s.log.Warnw("mqtt_payload_invalid", "topic", msg.Topic(), "err", err)
			return
		}

		ctx, cancel := context.WithTimeout(s.base, s.timeout)
		defer cancel()
		if _, err := s.ingest.SetHazardToggle(ctx, kind, on); err != nil {
			s.log.Errorw("mqtt_toggle_rejected", "topic", msg.Topic(), "hazard", kind, "err", err)
		}
	}
}
