package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// MaxMeetingPageSize caps a single meeting listing page.
const MaxMeetingPageSize = 100

// MeetingRequestInput describes a new meeting request.
type MeetingRequestInput struct {
	Name    string
	Email   string
	Purpose string
}

// MeetingListFilter describes admin listing filters.
type MeetingListFilter struct {
	Statuses []domain.MeetingStatus
	Limit    int
	Offset   int
}

// MeetingService creates and reads meeting requests.
type MeetingService struct {
	meetings   repository.MeetingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMeetingService constructs the service.
func NewMeetingService(meetings repository.MeetingRepository, dispatcher events.Dispatcher, logger *zap.Logger) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{meetings: meetings, dispatcher: dispatcher, logger: logger}
}

// Request files a pending meeting request on behalf of the caller.
func (s *MeetingService) Request(ctx context.Context, identity domain.Identity, input MeetingRequestInput) (*domain.MeetingRequest, error) {
	if identity.SubjectID == "" {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	meeting := &domain.MeetingRequest{
		ID:          uuid.NewString(),
		RequesterID: identity.SubjectID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Purpose:     strings.TrimSpace(input.Purpose),
		Status:      domain.MeetingStatusPending,
	}
	var missing []string
	if meeting.Name == "" {
		missing = append(missing, "name")
	}
	if meeting.Email == "" {
		missing = append(missing, "email")
	}
	if meeting.Purpose == "" {
		missing = append(missing, "purpose")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing...)
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		s.logger.Error("create meeting failed", zap.String("requester", identity.SubjectID), zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:      events.EventMeetingRequested,
		MeetingID: meeting.ID,
		ActorID:   identity.SubjectID,
		Payload: events.MeetingRequestedPayload{
			Name:    meeting.Name,
			Email:   meeting.Email,
			Purpose: meeting.Purpose,
		},
	})
	return meeting, nil
}

// Get loads a single meeting.
func (s *MeetingService) Get(ctx context.Context, id string) (*domain.MeetingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.NewMissingFields("meetingId")
	}
	meeting, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("meeting", map[string]any{"id": id})
		}
		s.logger.Error("load meeting failed", zap.String("meeting_id", id), zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	return meeting, nil
}

// List returns meetings newest first.
func (s *MeetingService) List(ctx context.Context, filter MeetingListFilter) ([]domain.MeetingRequest, error) {
	for _, status := range filter.Statuses {
		if !status.Valid() {
			return nil, apperrors.NewValidationError("invalid status filter", map[string]any{"status": status})
		}
	}
	if filter.Limit > MaxMeetingPageSize {
		filter.Limit = MaxMeetingPageSize
	}
	meetings, err := s.meetings.List(ctx, repository.MeetingFilter{
		Statuses: filter.Statuses,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		s.logger.Error("list meetings failed", zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	if meetings == nil {
		meetings = []domain.MeetingRequest{}
	}
	return meetings, nil
}
