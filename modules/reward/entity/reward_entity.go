package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reward is something points can buy. Stock counts remaining units;
// inactive rewards stay listed for admins but cannot be redeemed.
type Reward struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Cost        int       `db:"cost" json:"cost"`
	Stock       int       `db:"stock" json:"stock"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Redemption records one purchase at the price in force at the time.
type Redemption struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	RewardID    uuid.UUID `db:"reward_id" json:"reward_id"`
	PointsSpent int       `db:"points_spent" json:"points_spent"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
