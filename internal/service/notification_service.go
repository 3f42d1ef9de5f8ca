package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/config"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/messaging"
)

// Routing keys for decision messages.
const (
	RoutingKeyMeetingApproved = "meeting.approved"
	RoutingKeyMeetingDeclined = "meeting.declined"
)

// DecisionMessage is the broker payload for a meeting decision.
type DecisionMessage struct {
	EventID     string           `json:"event_id"`
	Type        events.EventType `json:"type"`
	MeetingID   string           `json:"meeting_id"`
	DecidedBy   string           `json:"decided_by"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Date        string           `json:"date,omitempty"`
	Time        string           `json:"time,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	MeetingLink string           `json:"meeting_link,omitempty"`
}

// NotificationService handles emitting notifications for meeting events.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  messaging.Publisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	newToken   func() string
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher messaging.Publisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		newToken:   uuid.NewString,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventMeetingRequested, n.handleMeetingRequested)
	n.dispatcher.Subscribe(events.EventMeetingApproved, n.handleMeetingApproved)
	n.dispatcher.Subscribe(events.EventMeetingDeclined, n.handleMeetingDeclined)
}

// MeetingLink builds the join link handed out when a meeting is approved.
func (n *NotificationService) MeetingLink() string {
	base := strings.TrimSpace(n.cfg.MeetingLinkBase)
	if base == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + n.newToken()
}

func (n *NotificationService) handleMeetingRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("MeetingRequested", zap.String("meeting_id", event.MeetingID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMeetingApproved(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.MeetingApprovedPayload)
	link := n.MeetingLink()
	n.logger.Info("MeetingApproved",
		zap.String("meeting_id", event.MeetingID),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
		zap.String("meeting_link", link))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return n.publish(ctx, RoutingKeyMeetingApproved, DecisionMessage{
		EventID:     event.ID,
		Type:        event.Type,
		MeetingID:   event.MeetingID,
		DecidedBy:   event.ActorID,
		Email:       payload.Email,
		Name:        payload.Name,
		Date:        payload.Date,
		Time:        payload.Time,
		MeetingLink: link,
	})
}

func (n *NotificationService) handleMeetingDeclined(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.MeetingDeclinedPayload)
	n.logger.Info("MeetingDeclined", zap.String("meeting_id", event.MeetingID), zap.String("reason", payload.Reason))
	n.sendWebhookNotificationStub(ctx, event)
	return n.publish(ctx, RoutingKeyMeetingDeclined, DecisionMessage{
		EventID:   event.ID,
		Type:      event.Type,
		MeetingID: event.MeetingID,
		DecidedBy: event.ActorID,
		Email:     payload.Email,
		Name:      payload.Name,
		Reason:    payload.Reason,
	})
}

func (n *NotificationService) publish(ctx context.Context, routingKey string, msg DecisionMessage) error {
	if n.publisher == nil {
		return nil
	}
	return n.publisher.Publish(ctx, routingKey, msg)
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("meeting_id", event.MeetingID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("meeting_id", event.MeetingID),
		zap.String("event_type", string(event.Type)))
}
