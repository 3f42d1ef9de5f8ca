package messaging

import (
	"context"
	"encoding/json"
	"sync"
)

// Message is a published message captured by Recorder.
type Message struct {
	RoutingKey string
	Body       []byte
}

// Recorder is an in-process Publisher used when no broker is configured.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish implements Publisher.
func (r *Recorder) Publish(ctx context.Context, routingKey string, message any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{RoutingKey: routingKey, Body: body})
	return nil
}

// Messages returns a copy of everything published so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Close implements Publisher.
func (r *Recorder) Close() error { return nil }
