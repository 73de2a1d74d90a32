package dto

import (
	"testing"
	"time"

	"campus-pulse/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToNotificationResponse(t *testing.T) {
	t.Run("formats the stored timestamp", func(t *testing.T) {
		created := time.Date(2026, 4, 10, 19, 30, 0, 0, time.UTC)
		got := ToNotificationResponse(&entity.Notification{
			ID:        uuid.New(),
			Type:      "event",
			Message:   "Your event was approved",
			CreatedAt: &created,
		})

		assert.Equal(t, "2026-04-10", got.DisplayDate)
	})

	t.Run("missing timestamp falls back instead of failing", func(t *testing.T) {
		got := ToNotificationResponse(&entity.Notification{
			ID:      uuid.New(),
			Type:    "points",
			Message: "You earned 10 points",
		})

		assert.Equal(t, "Unknown date", got.DisplayDate)
	})
}
