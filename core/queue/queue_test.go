package queue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEnqueue(t *testing.T) {
	// The client returns its sentinels wrapped, per asynq's Enqueue.
	wrappedConflict := fmt.Errorf("task ID conflicts with another task: %w", asynq.ErrTaskIDConflict)
	wrappedDuplicate := fmt.Errorf("task already exists: %w", asynq.ErrDuplicateTask)

	assert.True(t, isDuplicateEnqueue(asynq.ErrTaskIDConflict))
	assert.True(t, isDuplicateEnqueue(wrappedConflict))
	assert.True(t, isDuplicateEnqueue(wrappedDuplicate))

	assert.False(t, isDuplicateEnqueue(nil))
	assert.False(t, isDuplicateEnqueue(errors.New("redis down")))
}
