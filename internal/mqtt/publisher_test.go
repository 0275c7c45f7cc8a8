package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gnroof/internal/models"
)

func TestVentNotifier_PublishesRetained(t *testing.T) {
	pub := NewFakePublisher()
	n := NewVentNotifier(pub, NewTopics("roof"))

	err := n.VentChanged(context.Background(), models.VentChange{
		State: models.VentOpen,
		Actor: "alice",
		At:    time.Now(),
	})
	if err != nil {
		t.Fatalf("VentChanged: %v", err)
	}

	sent := pub.Sent()
	if len(sent) != 1 {
		t.Fatalf("got %d messages, want 1", len(sent))
	}
	if sent[0].Topic != "roof/vent/state" || !sent[0].Retained {
		t.Fatalf("got %+v", sent[0])
	}
	var p VentPayload
	if err := json.Unmarshal(sent[0].Payload, &p); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if p.Vent != models.VentOpen || p.Actor != "alice" || p.Cause != "" {
		t.Fatalf("got %+v", p)
	}
}

func TestVentNotifier_PublishError(t *testing.T) {
	pub := NewFakePublisher()
	pub.PublishError = errors.New("not connected")
	n := NewVentNotifier(pub, NewTopics("roof"))

	err := n.VentChanged(context.Background(), models.VentChange{State: models.VentClose})
	if !errors.Is(err, pub.PublishError) {
		t.Fatalf("got %v, want publish error", err)
	}
	if len(pub.Sent()) != 0 {
		t.Fatalf("failed publish was recorded")
	}
}
