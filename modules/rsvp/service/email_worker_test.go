package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"campus-pulse/core/constants"
	"campus-pulse/core/queue"
	"campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkerRepo struct {
	*fakeRsvpRepo
	details *entity.RsvpDetails
	marked  int
}

func (f *fakeWorkerRepo) GetDetails(_ context.Context, _ uuid.UUID) (*entity.RsvpDetails, error) {
	return f.details, nil
}

func (f *fakeWorkerRepo) MarkEmailSent(_ context.Context, _ uuid.UUID) (bool, error) {
	f.marked++
	return true, nil
}

type fakeCache struct {
	keys map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{keys: make(map[string]bool)}
}

func (f *fakeCache) SetOnce(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.keys[key] {
		return false, nil
	}
	f.keys[key] = true
	return true, nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	return f.keys[key], nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.keys, key)
	return nil
}

func emailTask(t *testing.T, payload queue.RsvpEmailPayload) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(constants.TaskTypeRsvpEmail, body)
}

func TestHandleRsvpEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed payload is not retried", func(t *testing.T) {
		worker := NewEmailWorker(&fakeWorkerRepo{fakeRsvpRepo: newFakeRsvpRepo()}, newFakeCache())

		err := worker.HandleRsvpEmail(ctx, asynq.NewTask(constants.TaskTypeRsvpEmail, []byte("{")))
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("cancelled reservation completes without sending", func(t *testing.T) {
		repo := &fakeWorkerRepo{fakeRsvpRepo: newFakeRsvpRepo(), details: nil}
		worker := NewEmailWorker(repo, newFakeCache())

		err := worker.HandleRsvpEmail(ctx, emailTask(t, queue.RsvpEmailPayload{RsvpID: uuid.New()}))
		assert.NoError(t, err)
		assert.Zero(t, repo.marked)
	})

	t.Run("already-sent reservation completes without sending", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			fakeRsvpRepo: newFakeRsvpRepo(),
			details: &entity.RsvpDetails{
				Rsvp: entity.Rsvp{ID: uuid.New(), EmailSent: true},
			},
		}
		guard := newFakeCache()
		worker := NewEmailWorker(repo, guard)

		err := worker.HandleRsvpEmail(ctx, emailTask(t, queue.RsvpEmailPayload{RsvpID: repo.details.ID}))
		assert.NoError(t, err)
		assert.Zero(t, repo.marked)
		assert.Empty(t, guard.keys)
	})
}
