package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/persistence"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

var errDiskFull = errors.New("disk full")

func newTestStores(t *testing.T) repository.Stores {
	t.Helper()

	ctx := context.Background()
	db, err := persistence.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(db.Close)
	if err := persistence.RunSQLiteMigrations(ctx, db.DB, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewSQLiteStores(db.DB)
}

func seedPendingMeeting(t *testing.T, repo repository.MeetingRepository, id string) {
	t.Helper()

	err := repo.Create(context.Background(), &domain.MeetingRequest{
		ID:          id,
		RequesterID: "candidate-1",
		Name:        "Grace",
		Email:       "grace@example.com",
		Purpose:     "portfolio review",
		Status:      domain.MeetingStatusPending,
	})
	if err != nil {
		t.Fatalf("seed meeting %s: %v", id, err)
	}
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()

	if !apperrors.HasCode(err, code) {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}

// eventLog records every event published through a dispatcher.
type eventLog struct {
	mu     sync.Mutex
	events []events.Event
}

func (l *eventLog) subscribe(d events.Dispatcher, types ...events.EventType) {
	for _, et := range types {
		d.Subscribe(et, func(_ context.Context, e events.Event) error {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.events = append(l.events, e)
			return nil
		})
	}
}

func (l *eventLog) all() []events.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]events.Event(nil), l.events...)
}

// countingMeetings wraps a repository, counting calls and optionally failing them.
type countingMeetings struct {
	repository.MeetingRepository
	mu            sync.Mutex
	calls         int
	getErr        error
	transitionErr error
}

func (c *countingMeetings) GetByID(ctx context.Context, id string) (*domain.MeetingRequest, error) {
	c.mu.Lock()
	c.calls++
	err := c.getErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.MeetingRepository.GetByID(ctx, id)
}

func (c *countingMeetings) Transition(ctx context.Context, id string, from domain.MeetingStatus, t domain.MeetingTransition) (*domain.MeetingRequest, error) {
	c.mu.Lock()
	c.calls++
	err := c.transitionErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.MeetingRepository.Transition(ctx, id, from, t)
}

func (c *countingMeetings) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
