package events

import (
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMeetingRequested EventType = "meeting_requested"
	EventMeetingApproved  EventType = "meeting_approved"
	EventMeetingDeclined  EventType = "meeting_declined"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	MeetingID string      `json:"meeting_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MeetingRequestedPayload payload.
type MeetingRequestedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// MeetingApprovedPayload payload.
type MeetingApprovedPayload struct {
	Change StatusChange `json:"change"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Date   string       `json:"date"`
	Time   string       `json:"time"`
}

// MeetingDeclinedPayload payload.
type MeetingDeclinedPayload struct {
	Change StatusChange `json:"change"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Reason string       `json:"reason"`
}

// StatusChange describes a transition carried in decision events.
type StatusChange struct {
	OldStatus domain.MeetingStatus `json:"old_status"`
	NewStatus domain.MeetingStatus `json:"new_status"`
}
