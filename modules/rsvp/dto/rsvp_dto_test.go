package dto

import (
	"testing"
	"time"

	"campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToMyRsvpResponse(t *testing.T) {
	base := entity.Rsvp{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		EventID:   uuid.New(),
		Status:    "going",
		CreatedAt: time.Now(),
	}

	t.Run("carries the event summary", func(t *testing.T) {
		title := "Open Mic Night"
		location := "Student Union"
		got := ToMyRsvpResponse(&entity.UserRsvp{
			Rsvp:          base,
			EventTitle:    &title,
			EventLocation: &location,
		})

		assert.Equal(t, "Open Mic Night", got.EventTitle)
		assert.Equal(t, "Student Union", got.EventLocation)
	})

	t.Run("deleted event falls back to a placeholder title", func(t *testing.T) {
		got := ToMyRsvpResponse(&entity.UserRsvp{Rsvp: base})

		assert.Equal(t, "Unknown event", got.EventTitle)
		assert.Empty(t, got.EventLocation)
		assert.Nil(t, got.EventStartTime)
	})
}
