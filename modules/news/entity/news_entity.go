package entity

import (
	"time"

	"github.com/google/uuid"
)

// News is a campus announcement. Unpublished posts are only visible to
// admins.
type News struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
