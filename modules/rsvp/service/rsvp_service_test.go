package service

import (
	"context"
	"testing"
	"time"

	coreEntity "campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/params"
	"campus-pulse/core/queue"
	"campus-pulse/modules/rsvp/entity"
	"campus-pulse/modules/rsvp/repository"

	eventEntity "campus-pulse/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rsvpKey struct {
	userID  uuid.UUID
	eventID uuid.UUID
}

type fakeRsvpRepo struct {
	rsvps        map[rsvpKey]*entity.Rsvp
	goingCount   map[uuid.UUID]int
	lastCapacity int
}

func newFakeRsvpRepo() *fakeRsvpRepo {
	return &fakeRsvpRepo{
		rsvps:      make(map[rsvpKey]*entity.Rsvp),
		goingCount: make(map[uuid.UUID]int),
	}
}

func (f *fakeRsvpRepo) Upsert(_ context.Context, userID uuid.UUID, eventID uuid.UUID, capacity int) (*entity.Rsvp, error) {
	f.lastCapacity = capacity
	key := rsvpKey{userID, eventID}

	if existing, ok := f.rsvps[key]; ok {
		copied := *existing
		return &copied, nil
	}
	if capacity > 0 && f.goingCount[eventID] >= capacity {
		return nil, repository.ErrEventFull
	}

	r := &entity.Rsvp{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   eventID,
		Status:    "going",
		CreatedAt: time.Now(),
	}
	f.rsvps[key] = r
	f.goingCount[eventID]++
	copied := *r
	return &copied, nil
}

func (f *fakeRsvpRepo) GetByUserAndEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (*entity.Rsvp, error) {
	r, ok := f.rsvps[rsvpKey{userID, eventID}]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRsvpRepo) GetDetails(_ context.Context, _ uuid.UUID) (*entity.RsvpDetails, error) {
	return nil, nil
}

func (f *fakeRsvpRepo) Delete(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	key := rsvpKey{userID, eventID}
	if _, ok := f.rsvps[key]; !ok {
		return false, nil
	}
	delete(f.rsvps, key)
	f.goingCount[eventID]--
	return true, nil
}

func (f *fakeRsvpRepo) CountGoing(_ context.Context, eventID uuid.UUID) (int, error) {
	return f.goingCount[eventID], nil
}

func (f *fakeRsvpRepo) ListByUser(_ context.Context, userID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Pagination[entity.UserRsvp], error) {
	items := []entity.UserRsvp{}
	for key, r := range f.rsvps {
		if key.userID == userID {
			items = append(items, entity.UserRsvp{Rsvp: *r})
		}
	}
	return &coreEntity.Pagination[entity.UserRsvp]{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeRsvpRepo) ListByEvent(_ context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Pagination[entity.EventRsvp], error) {
	items := []entity.EventRsvp{}
	for key, r := range f.rsvps {
		if key.eventID == eventID {
			items = append(items, entity.EventRsvp{Rsvp: *r})
		}
	}
	return &coreEntity.Pagination[entity.EventRsvp]{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeRsvpRepo) MarkEmailSent(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

type fakeEvents struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEvents) GetByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

type fakeRsvpNotifier struct {
	calls int
}

func (f *fakeRsvpNotifier) NotifyRsvp(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ string) error {
	f.calls++
	return nil
}

type fakeQueue struct {
	enqueued []queue.RsvpEmailPayload
}

func (f *fakeQueue) EnqueueRsvpEmail(payload queue.RsvpEmailPayload) error {
	f.enqueued = append(f.enqueued, payload)
	return nil
}

func (f *fakeQueue) Close() error { return nil }

func approvedEvent(capacity int) *eventEntity.Event {
	return &eventEntity.Event{
		ID:        uuid.New(),
		Title:     "Open Mic Night",
		Status:    eventEntity.EventStatusApproved,
		Capacity:  capacity,
		StartTime: time.Now().Add(48 * time.Hour),
	}
}

func newTestRsvpService(t *testing.T, events ...*eventEntity.Event) (RsvpServiceInterface, *fakeRsvpRepo, *fakeRsvpNotifier, *fakeQueue) {
	t.Helper()
	repo := newFakeRsvpRepo()
	catalog := &fakeEvents{events: make(map[uuid.UUID]*eventEntity.Event)}
	for _, e := range events {
		catalog.events[e.ID] = e
	}
	notifier := &fakeRsvpNotifier{}
	q := &fakeQueue{}
	return NewRsvpService(repo, catalog, notifier, q), repo, notifier, q
}

func TestRsvp(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves a spot, notifies and enqueues the email", func(t *testing.T) {
		event := approvedEvent(0)
		svc, repo, notifier, q := newTestRsvpService(t, event)
		userID := uuid.New()

		got, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)
		assert.Equal(t, "going", got.Status)
		assert.Equal(t, 1, notifier.calls)
		require.Len(t, q.enqueued, 1)
		assert.Equal(t, got.ID, q.enqueued[0].RsvpID)
		assert.Equal(t, 0, repo.lastCapacity)
	})

	t.Run("repeat RSVP keeps the same reservation", func(t *testing.T) {
		event := approvedEvent(1)
		svc, repo, _, q := newTestRsvpService(t, event)
		userID := uuid.New()

		first, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)
		second, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)

		assert.Equal(t, first.ID, second.ID)
		count, err := repo.CountGoing(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		// Both calls enqueue; the task id dedups downstream.
		for _, payload := range q.enqueued {
			assert.Equal(t, first.ID, payload.RsvpID)
		}
	})

	t.Run("full event rejects new reservations", func(t *testing.T) {
		event := approvedEvent(1)
		svc, _, _, q := newTestRsvpService(t, event)

		_, appErr := svc.Rsvp(ctx, uuid.New(), event.ID)
		require.Nil(t, appErr)

		_, appErr = svc.Rsvp(ctx, uuid.New(), event.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Len(t, q.enqueued, 1)
	})

	t.Run("pending event is not open", func(t *testing.T) {
		event := approvedEvent(0)
		event.Status = eventEntity.EventStatusPending
		svc, _, _, _ := newTestRsvpService(t, event)

		_, appErr := svc.Rsvp(ctx, uuid.New(), event.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _, _ := newTestRsvpService(t)

		_, appErr := svc.Rsvp(ctx, uuid.New(), uuid.New())
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestCancelRsvp(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel frees the spot", func(t *testing.T) {
		event := approvedEvent(1)
		svc, _, _, _ := newTestRsvpService(t, event)
		userID := uuid.New()

		_, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)
		require.Nil(t, svc.Cancel(ctx, userID, event.ID))

		// The freed seat is available again.
		_, appErr = svc.Rsvp(ctx, uuid.New(), event.ID)
		assert.Nil(t, appErr)
	})

	t.Run("cancel without reservation is a no-op", func(t *testing.T) {
		event := approvedEvent(0)
		svc, _, _, _ := newTestRsvpService(t, event)
		userID := uuid.New()

		require.Nil(t, svc.Cancel(ctx, userID, event.ID))

		// Still not going afterwards.
		status, appErr := svc.GetStatus(ctx, userID, event.ID)
		require.Nil(t, appErr)
		assert.False(t, status.Going)
	})

	t.Run("cancelling twice is safe", func(t *testing.T) {
		event := approvedEvent(0)
		svc, _, _, _ := newTestRsvpService(t, event)
		userID := uuid.New()

		_, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)
		require.Nil(t, svc.Cancel(ctx, userID, event.ID))
		require.Nil(t, svc.Cancel(ctx, userID, event.ID))
	})
}

func TestRsvpStatus(t *testing.T) {
	ctx := context.Background()
	event := approvedEvent(0)
	svc, _, _, _ := newTestRsvpService(t, event)
	userID := uuid.New()

	status, appErr := svc.GetStatus(ctx, userID, event.ID)
	require.Nil(t, appErr)
	assert.False(t, status.Going)

	_, appErr = svc.Rsvp(ctx, userID, event.ID)
	require.Nil(t, appErr)

	status, appErr = svc.GetStatus(ctx, userID, event.ID)
	require.Nil(t, appErr)
	assert.True(t, status.Going)
	assert.False(t, status.EmailSent)
}

func TestSendConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("re-requests the email for an unsent reservation", func(t *testing.T) {
		event := approvedEvent(0)
		svc, _, _, q := newTestRsvpService(t, event)
		userID := uuid.New()

		_, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)

		_, appErr = svc.SendConfirmation(ctx, userID, event.ID)
		require.Nil(t, appErr)
		assert.Len(t, q.enqueued, 2)
	})

	t.Run("no enqueue once the email went out", func(t *testing.T) {
		event := approvedEvent(0)
		svc, repo, _, q := newTestRsvpService(t, event)
		userID := uuid.New()

		got, appErr := svc.Rsvp(ctx, userID, event.ID)
		require.Nil(t, appErr)
		repo.rsvps[rsvpKey{userID, event.ID}].EmailSent = true

		status, appErr := svc.SendConfirmation(ctx, userID, event.ID)
		require.Nil(t, appErr)
		assert.True(t, status.EmailSent)
		require.Len(t, q.enqueued, 1)
		assert.Equal(t, got.ID, q.enqueued[0].RsvpID)
	})

	t.Run("no reservation", func(t *testing.T) {
		event := approvedEvent(0)
		svc, _, _, _ := newTestRsvpService(t, event)

		_, appErr := svc.SendConfirmation(ctx, uuid.New(), event.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}
