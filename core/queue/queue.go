package queue

import (
	"encoding/json"
	"errors"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/constants"
	"campus-pulse/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// RsvpEmailPayload is the body of a confirmation-email task.
type RsvpEmailPayload struct {
	RsvpID  uuid.UUID `json:"rsvp_id"`
	UserID  uuid.UUID `json:"user_id"`
	EventID uuid.UUID `json:"event_id"`
}

// Client enqueues side-effect tasks after the primary write has committed.
// Tasks are durable and retried by the worker, so a failed email never
// unwinds (or silently loses) the RSVP itself.
type Client interface {
	EnqueueRsvpEmail(payload RsvpEmailPayload) error
	Close() error
}

type client struct {
	inner *asynq.Client
}

func NewClient(cfg config.RedisConfig) Client {
	return &client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueRsvpEmail schedules the confirmation email for an RSVP. The task ID
// is derived from the RSVP record id, so the explicit send-confirmation call
// and the automatic enqueue on RSVP creation collapse into one task.
func (c *client) EnqueueRsvpEmail(payload RsvpEmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskTypeRsvpEmail, body)
	_, err = c.inner.Enqueue(task,
		asynq.TaskID("rsvp-email-"+payload.RsvpID.String()),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if isDuplicateEnqueue(err) {
		logger.Info("Queue:EnqueueRsvpEmail:AlreadyQueued", "rsvp_id", payload.RsvpID)
		return nil
	}
	return err
}

// isDuplicateEnqueue reports whether the enqueue failed only because the task
// already exists. asynq wraps its sentinels, so this must unwrap.
func isDuplicateEnqueue(err error) bool {
	return errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask)
}

func (c *client) Close() error {
	return c.inner.Close()
}

// NewServer builds the in-process worker that drains side-effect tasks.
// Handlers are registered on the returned mux by the owning modules.
func NewServer(cfg config.RedisConfig) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return srv, asynq.NewServeMux()
}
