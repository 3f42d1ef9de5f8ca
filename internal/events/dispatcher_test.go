package events

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryDispatcher(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher(nil)
	var calls []string
	d.Subscribe(EventMeetingApproved, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.MeetingID)
		return errors.New("boom")
	})
	d.Subscribe(EventMeetingApproved, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.MeetingID)
		return nil
	})
	d.Subscribe(EventMeetingDeclined, func(_ context.Context, _ Event) error {
		calls = append(calls, "declined")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventMeetingApproved, MeetingID: "m1"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(calls) != 2 || calls[0] != "first:m1" || calls[1] != "second:m1" {
		t.Errorf("calls = %v, want both approved handlers in order", calls)
	}
}
