package service

import (
	"context"
	"testing"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/events"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

func TestMeetingRequestAndRead(t *testing.T) {
	t.Parallel()

	stores := newTestStores(t)
	dispatcher := events.NewInMemoryDispatcher(nil)
	log := &eventLog{}
	log.subscribe(dispatcher, events.EventMeetingRequested)
	svc := NewMeetingService(stores.Meetings, dispatcher, nil)
	ctx := context.Background()

	meeting, err := svc.Request(ctx, domain.Identity{SubjectID: "cand-1"}, MeetingRequestInput{
		Name:    "Ken",
		Email:   "ken@example.com",
		Purpose: "mock interview",
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if meeting.ID == "" || meeting.Status != domain.MeetingStatusPending || meeting.RequesterID != "cand-1" {
		t.Errorf("meeting = %+v", meeting)
	}
	if published := log.all(); len(published) != 1 || published[0].MeetingID != meeting.ID {
		t.Errorf("events = %+v", published)
	}

	got, err := svc.Get(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Purpose != "mock interview" {
		t.Errorf("Purpose = %q", got.Purpose)
	}

	list, err := svc.List(ctx, MeetingListFilter{Statuses: []domain.MeetingStatus{domain.MeetingStatusPending}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}

	empty, err := svc.List(ctx, MeetingListFilter{Statuses: []domain.MeetingStatus{domain.MeetingStatusDeclined}})
	if err != nil {
		t.Fatalf("List(declined) error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("declined list = %#v, want empty non-nil slice", empty)
	}
}

func TestMeetingServiceErrors(t *testing.T) {
	t.Parallel()

	svc := NewMeetingService(newTestStores(t).Meetings, nil, nil)
	ctx := context.Background()

	_, err := svc.Request(ctx, domain.Identity{SubjectID: "cand-1"}, MeetingRequestInput{Name: "Ken"})
	wantCode(t, err, apperrors.CodeValidationFailed)

	_, err = svc.Request(ctx, domain.Identity{}, MeetingRequestInput{Name: "Ken", Email: "k@e.com", Purpose: "p"})
	wantCode(t, err, apperrors.CodeUnauthenticated)

	_, err = svc.Get(ctx, "missing")
	wantCode(t, err, apperrors.CodeNotFound)

	_, err = svc.List(ctx, MeetingListFilter{Statuses: []domain.MeetingStatus{"archived"}})
	wantCode(t, err, apperrors.CodeValidationFailed)
}
