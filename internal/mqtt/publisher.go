package mqtt

import (
	"context"
	"fmt"
	"time"

	"gnroof/internal/models"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher sends one message to the broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, retained bool, payload []byte) error
}

// PahoPublisher publishes with QoS 1 through a connected paho client.
type PahoPublisher struct {
	client  paho.Client
	timeout time.Duration
}

func NewPahoPublisher(client paho.Client, timeout time.Duration) *PahoPublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &PahoPublisher{client: client, timeout: timeout}
}

func (p *PahoPublisher) Publish(ctx context.Context, topic string, retained bool, payload []byte) error {
	timeout := p.timeout
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until < timeout {
			timeout = until
		}
	}
	token := p.client.Publish(topic, 1, retained, payload)
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish %s: timeout after %s", topic, timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// VentNotifier publishes every committed vent transition as retained state so
// late subscribers see the current position.
type VentNotifier struct {
	pub   Publisher
	topic string
}

func NewVentNotifier(pub Publisher, topics Topics) *VentNotifier {
	return &VentNotifier{pub: pub, topic: topics.VentState}
}

func (n *VentNotifier) VentChanged(ctx context.Context, c models.VentChange) error {
	payload, err := FormatVentPayload(c)
	if err != nil {
		return fmt.Errorf("format vent payload: %w", err)
	}
	return n.pub.Publish(ctx, n.topic, true, payload)
}
