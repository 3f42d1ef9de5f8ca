package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// Action names an approval decision branch.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
)

// Decision is either an ApproveDecision or a DeclineDecision. Each variant carries exactly the
// fields its branch needs.
type Decision interface {
	Action() Action
	target() string
	missingFields() []string
	transition(decidedBy string, at time.Time) domain.MeetingTransition
}

// ApproveDecision schedules a pending meeting.
type ApproveDecision struct {
	MeetingID string
	Date      string
	Time      string
}

// Action implements Decision.
func (ApproveDecision) Action() Action { return ActionApprove }

func (d ApproveDecision) target() string { return strings.TrimSpace(d.MeetingID) }

func (d ApproveDecision) missingFields() []string {
	var missing []string
	if d.target() == "" {
		missing = append(missing, "meetingId")
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.Time) == "" {
		missing = append(missing, "time")
	}
	return missing
}

func (d ApproveDecision) transition(decidedBy string, at time.Time) domain.MeetingTransition {
	return domain.MeetingTransition{
		Status:    domain.MeetingStatusApproved,
		Date:      strings.TrimSpace(d.Date),
		Time:      strings.TrimSpace(d.Time),
		DecidedBy: decidedBy,
		DecidedAt: at,
	}
}

// DeclineDecision rejects a pending meeting.
type DeclineDecision struct {
	MeetingID string
	Reason    string
}

// Action implements Decision.
func (DeclineDecision) Action() Action { return ActionDecline }

func (d DeclineDecision) target() string { return strings.TrimSpace(d.MeetingID) }

func (d DeclineDecision) missingFields() []string {
	var missing []string
	if d.target() == "" {
		missing = append(missing, "meetingId")
	}
	if strings.TrimSpace(d.Reason) == "" {
		missing = append(missing, "reason")
	}
	return missing
}

func (d DeclineDecision) transition(decidedBy string, at time.Time) domain.MeetingTransition {
	return domain.MeetingTransition{
		Status:    domain.MeetingStatusDeclined,
		Reason:    strings.TrimSpace(d.Reason),
		DecidedBy: decidedBy,
		DecidedAt: at,
	}
}

// ApprovalResult confirms a completed transition.
type ApprovalResult struct {
	MeetingID string
	Status    domain.MeetingStatus
	Meeting   *domain.MeetingRequest
}

// ApprovalWorkflow moves pending meetings to approved or declined.
type ApprovalWorkflow struct {
	meetings   repository.MeetingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewApprovalWorkflow constructs the workflow.
func NewApprovalWorkflow(meetings repository.MeetingRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ApprovalWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalWorkflow{
		meetings:   meetings,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Apply validates the decision, then transitions the meeting only if it is still pending.
// A meeting that already reached a terminal status is rejected with InvalidState.
func (w *ApprovalWorkflow) Apply(ctx context.Context, identity domain.Identity, decision Decision) (*ApprovalResult, error) {
	if identity.SubjectID == "" {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	if decision == nil {
		return nil, apperrors.NewMissingFields("action")
	}
	if missing := decision.missingFields(); len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing...)
	}

	id := decision.target()
	meeting, err := w.meetings.GetByID(ctx, id)
	if err != nil {
		return nil, w.mapStoreError(err, id, "load meeting")
	}
	if meeting.Status != domain.MeetingStatusPending {
		return nil, invalidState(id, meeting.Status)
	}

	updated, err := w.meetings.Transition(ctx, id, domain.MeetingStatusPending, decision.transition(identity.SubjectID, w.now()))
	if err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			current := domain.MeetingStatus("")
			if latest, getErr := w.meetings.GetByID(ctx, id); getErr == nil {
				current = latest.Status
			}
			return nil, invalidState(id, current)
		}
		return nil, w.mapStoreError(err, id, "transition meeting")
	}

	w.publishDecision(ctx, identity, decision, updated)
	return &ApprovalResult{MeetingID: updated.ID, Status: updated.Status, Meeting: updated}, nil
}

func (w *ApprovalWorkflow) mapStoreError(err error, id, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("meeting", map[string]any{"id": id})
	}
	w.logger.Error(op+" failed", zap.String("meeting_id", id), zap.Error(err))
	return apperrors.NewStorageError(err)
}

func (w *ApprovalWorkflow) publishDecision(ctx context.Context, identity domain.Identity, decision Decision, meeting *domain.MeetingRequest) {
	change := events.StatusChange{OldStatus: domain.MeetingStatusPending, NewStatus: meeting.Status}
	event := events.Event{
		MeetingID: meeting.ID,
		ActorID:   identity.SubjectID,
	}
	switch decision.Action() {
	case ActionApprove:
		event.Type = events.EventMeetingApproved
		event.Payload = events.MeetingApprovedPayload{
			Change: change,
			Name:   meeting.Name,
			Email:  meeting.Email,
			Date:   meeting.Date,
			Time:   meeting.Time,
		}
	case ActionDecline:
		event.Type = events.EventMeetingDeclined
		event.Payload = events.MeetingDeclinedPayload{
			Change: change,
			Name:   meeting.Name,
			Email:  meeting.Email,
			Reason: meeting.Reason,
		}
	default:
		return
	}
	publishEvent(ctx, w.dispatcher, event)
}

func invalidState(id string, status domain.MeetingStatus) error {
	return apperrors.NewInvalidState("meeting is not pending", map[string]any{
		"id":     id,
		"status": status,
	})
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_ = dispatcher.Publish(ctx, event)
}
