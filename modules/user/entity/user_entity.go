package entity

import (
	"time"

	coreEntity "campus-pulse/core/entity"

	"github.com/google/uuid"
)

// User is an account in the system. PasswordHash is nil for OAuth-only users.
type User struct {
	Email        string  `db:"email" json:"email"`
	Username     string  `db:"username" json:"username"`
	FullName     string  `db:"full_name" json:"full_name"`
	PasswordHash *string `db:"password_hash" json:"-"`
	Role         string  `db:"role" json:"role"`
	SignupMethod string  `db:"signup_method" json:"signup_method"`
	Points       int     `db:"points" json:"points"`
	coreEntity.BaseEntity
}

// PointHistory is one earning entry in the points ledger. EventTitle is
// denormalized so the entry survives event deletion.
type PointHistory struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	EventTitle string    `db:"event_title" json:"event_title"`
	Points     int       `db:"points" json:"points"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// LeaderboardEntry is a row of the campus points leaderboard.
type LeaderboardEntry struct {
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	Username string    `db:"username" json:"username"`
	Points   int       `db:"points" json:"points"`
}
