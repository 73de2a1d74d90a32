package entity

import (
	"time"

	coreEntity "campus-pulse/core/entity"

	"github.com/google/uuid"
)

// Notification is an in-app message created by state-changing actions.
// RelatedID points at the event/reward that produced it, when there is one.
// CreatedAt is nullable on read: legacy rows may miss the timestamp and the
// display layer substitutes "Unknown date".
type Notification struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Type        string     `db:"type" json:"type"`
	Message     string     `db:"message" json:"message"`
	RelatedID   *uuid.UUID `db:"related_id" json:"related_id,omitempty"`
	IsRead      bool       `db:"is_read" json:"is_read"`
	IsImportant bool       `db:"is_important" json:"is_important"`
	CreatedAt   *time.Time `db:"created_at" json:"created_at,omitempty"`
}

type PaginatedNotificationEntity = coreEntity.Pagination[Notification]
