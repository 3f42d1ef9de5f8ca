package worker

import (
	"context"
	"testing"

	"github.com/careerhub/portal-service/internal/config"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/messaging"
	"github.com/careerhub/portal-service/internal/service"
)

func TestStartNotificationWorkerRegistersHandlers(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher(nil)
	recorder := messaging.NewRecorder()
	notifications := service.NewNotificationService(dispatcher, recorder, nil, config.NotificationConfig{MeetingLinkBase: "https://meet.test/"})

	stop := StartNotificationWorker(notifications, recorder, nil)
	defer stop()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-1",
		Type:      events.EventMeetingDeclined,
		MeetingID: "m1",
		Payload:   events.MeetingDeclinedPayload{Reason: "full calendar"},
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	msgs := recorder.Messages()
	if len(msgs) != 1 || msgs[0].RoutingKey != service.RoutingKeyMeetingDeclined {
		t.Fatalf("messages = %+v, want one declined message", msgs)
	}
}

func TestStartNotificationWorkerNilService(t *testing.T) {
	t.Parallel()

	stop := StartNotificationWorker(nil, nil, nil)
	stop()
}
