package service

import (
	"context"
	"testing"
	"time"

	coreEntity "campus-pulse/core/entity"
	"campus-pulse/core/params"
	"campus-pulse/modules/event/dto"
	"campus-pulse/modules/event/entity"
	"campus-pulse/modules/event/repository"

	"campus-pulse/core/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	e := *event
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.events[e.ID] = &e
	return &e, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) List(_ context.Context, _ repository.ListFilter, queryParams params.QueryParams) (*coreEntity.Pagination[entity.Event], error) {
	items := make([]entity.Event, 0, len(f.events))
	for _, e := range f.events {
		items = append(items, *e)
	}
	return &coreEntity.Pagination[entity.Event]{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) SetPosterKey(_ context.Context, id uuid.UUID, key string) error {
	if e, ok := f.events[id]; ok {
		e.PosterKey = &key
	}
	return nil
}

func (f *fakeEventRepo) GetStats(_ context.Context) (*entity.EventStats, error) {
	return &entity.EventStats{}, nil
}

type fakeEmitter struct {
	approved []uuid.UUID
	rejected []uuid.UUID
}

func (f *fakeEmitter) NotifyEventApproved(_ context.Context, _ uuid.UUID, eventID uuid.UUID, _ string) error {
	f.approved = append(f.approved, eventID)
	return nil
}

func (f *fakeEmitter) NotifyEventRejected(_ context.Context, _ uuid.UUID, eventID uuid.UUID, _ string, _ string) error {
	f.rejected = append(f.rejected, eventID)
	return nil
}

type fakeStorage struct{}

func (fakeStorage) PresignPosterUpload(_ context.Context, key string, _ string) (string, error) {
	return "https://uploads.test/" + key, nil
}

func (fakeStorage) ObjectURL(key string) string {
	return "https://cdn.test/" + key
}

func newTestEventService(t *testing.T) (EventServiceInterface, *fakeEventRepo, *fakeEmitter) {
	t.Helper()
	repo := newFakeEventRepo()
	emitter := &fakeEmitter{}
	return NewEventService(repo, emitter, fakeStorage{}), repo, emitter
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("admin submission goes live and notifies the creator", func(t *testing.T) {
		svc, _, emitter := newTestEventService(t)

		got, appErr := svc.Create(ctx, uuid.New(), true, &dto.CreateEventRequest{
			Title:     "Spring Hackathon",
			StartTime: "2026-04-10T09:00:00Z",
		})
		require.Nil(t, appErr)
		assert.Equal(t, string(entity.EventStatusApproved), got.Status)
		assert.Equal(t, "spring-hackathon", got.Slug)
		assert.Len(t, emitter.approved, 1)
	})

	t.Run("non-admin submission stays pending with no notification", func(t *testing.T) {
		svc, _, emitter := newTestEventService(t)

		got, appErr := svc.Create(ctx, uuid.New(), false, &dto.CreateEventRequest{
			Title: "Chess Night",
			Date:  "2026-04-10",
			Time:  "19:00",
		})
		require.Nil(t, appErr)
		assert.Equal(t, string(entity.EventStatusPending), got.Status)
		assert.Empty(t, emitter.approved)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)

		_, appErr := svc.Create(ctx, uuid.New(), false, &dto.CreateEventRequest{
			StartTime: "2026-04-10T09:00:00Z",
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("negative capacity rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)

		_, appErr := svc.Create(ctx, uuid.New(), false, &dto.CreateEventRequest{
			Title:     "Chess Night",
			StartTime: "2026-04-10T09:00:00Z",
			Capacity:  -5,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("missing start rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)

		_, appErr := svc.Create(ctx, uuid.New(), false, &dto.CreateEventRequest{Title: "Chess Night"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}

func createPendingEvent(t *testing.T, svc EventServiceInterface, creatorID uuid.UUID) uuid.UUID {
	t.Helper()
	got, appErr := svc.Create(context.Background(), creatorID, false, &dto.CreateEventRequest{
		Title:     "Open Mic",
		StartTime: "2026-04-10T19:00:00Z",
	})
	require.Nil(t, appErr)
	return got.ID
}

func TestReviewEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("approving a pending event notifies exactly once", func(t *testing.T) {
		svc, _, emitter := newTestEventService(t)
		eventID := createPendingEvent(t, svc, uuid.New())

		got, appErr := svc.Review(ctx, eventID, uuid.New(), &dto.ReviewEventRequest{Status: "approved"})
		require.Nil(t, appErr)
		assert.Equal(t, string(entity.EventStatusApproved), got.Status)
		assert.Len(t, emitter.approved, 1)
	})

	t.Run("re-approving an approved event emits nothing", func(t *testing.T) {
		svc, _, emitter := newTestEventService(t)
		eventID := createPendingEvent(t, svc, uuid.New())

		_, appErr := svc.Review(ctx, eventID, uuid.New(), &dto.ReviewEventRequest{Status: "approved"})
		require.Nil(t, appErr)
		_, appErr = svc.Review(ctx, eventID, uuid.New(), &dto.ReviewEventRequest{Status: "approved"})
		require.Nil(t, appErr)

		assert.Len(t, emitter.approved, 1)
	})

	t.Run("rejection notifies with notes", func(t *testing.T) {
		svc, repo, emitter := newTestEventService(t)
		eventID := createPendingEvent(t, svc, uuid.New())

		got, appErr := svc.Review(ctx, eventID, uuid.New(), &dto.ReviewEventRequest{
			Status: "rejected",
			Notes:  "No room available that week",
		})
		require.Nil(t, appErr)
		assert.Equal(t, string(entity.EventStatusRejected), got.Status)
		assert.Len(t, emitter.rejected, 1)

		stored := repo.events[eventID]
		require.NotNil(t, stored.ReviewNotes)
		assert.Equal(t, "No room available that week", *stored.ReviewNotes)
		assert.NotNil(t, stored.ReviewedAt)
	})

	t.Run("invalid review status rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		eventID := createPendingEvent(t, svc, uuid.New())

		_, appErr := svc.Review(ctx, eventID, uuid.New(), &dto.ReviewEventRequest{Status: "pending"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)

		_, appErr := svc.Review(ctx, uuid.New(), uuid.New(), &dto.ReviewEventRequest{Status: "approved"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("status patch into approved notifies exactly once", func(t *testing.T) {
		svc, _, emitter := newTestEventService(t)
		creatorID := uuid.New()
		eventID := createPendingEvent(t, svc, creatorID)

		_, appErr := svc.Update(ctx, eventID, uuid.New(), true, &dto.UpdateEventRequest{Status: "approved"})
		require.Nil(t, appErr)
		assert.Len(t, emitter.approved, 1)

		// Saving an approved event again changes nothing.
		_, appErr = svc.Update(ctx, eventID, uuid.New(), true, &dto.UpdateEventRequest{Status: "approved"})
		require.Nil(t, appErr)
		assert.Len(t, emitter.approved, 1)
	})

	t.Run("non-admin cannot change status", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		creatorID := uuid.New()
		eventID := createPendingEvent(t, svc, creatorID)

		_, appErr := svc.Update(ctx, eventID, creatorID, false, &dto.UpdateEventRequest{Status: "approved"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrForbidden, appErr.Code)
	})

	t.Run("stranger cannot edit", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		eventID := createPendingEvent(t, svc, uuid.New())

		_, appErr := svc.Update(ctx, eventID, uuid.New(), false, &dto.UpdateEventRequest{Title: "Hijacked"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrForbidden, appErr.Code)
	})

	t.Run("creator can edit fields", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		creatorID := uuid.New()
		eventID := createPendingEvent(t, svc, creatorID)

		capacity := 40
		got, appErr := svc.Update(ctx, eventID, creatorID, false, &dto.UpdateEventRequest{
			Location: "Main Hall",
			Capacity: &capacity,
		})
		require.Nil(t, appErr)
		assert.Equal(t, "Main Hall", got.Location)
		assert.Equal(t, 40, got.Capacity)
	})
}
