package mqtt

import (
	"context"
	"sync"
)

// Message is one payload recorded by FakePublisher.
type Message struct {
	Topic    string
	Retained bool
	Payload  []byte
}

// FakePublisher records published messages for test assertions.
type FakePublisher struct {
	mu       sync.Mutex
	Messages []Message

	// PublishError, if set, is returned by Publish and nothing is recorded.
	PublishError error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) Publish(_ context.Context, topic string, retained bool, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Messages = append(f.Messages, Message{Topic: topic, Retained: retained, Payload: payload})
	return nil
}

// Sent returns a copy of the recorded messages.
func (f *FakePublisher) Sent() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.Messages...)
}
