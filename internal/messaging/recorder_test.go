package messaging

import (
	"context"
	"encoding/json"
	"testing"
)

func TestRecorderPublish(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if err := r.Publish(context.Background(), "meeting.approved", map[string]string{"id": "m1"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	msgs := r.Messages()
	if len(msgs) != 1 || msgs[0].RoutingKey != "meeting.approved" {
		t.Fatalf("messages = %+v", msgs)
	}
	var body map[string]string
	if err := json.Unmarshal(msgs[0].Body, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["id"] != "m1" {
		t.Errorf("body = %v", body)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Publish(ctx, "meeting.declined", nil); err == nil {
		t.Error("Publish() with cancelled context should fail")
	}
}
