package dto

import (
	"time"

	"campus-pulse/modules/reward/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CreateRewardRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Cost        int    `json:"cost" validate:"required,min=1"`
	Stock       int    `json:"stock" validate:"min=0"`
	Active      *bool  `json:"active"`
}

type UpdateRewardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        *int   `json:"cost"`
	Stock       *int   `json:"stock"`
	Active      *bool  `json:"active"`
}

// ===================== Response DTOs =====================

type RedemptionResponse struct {
	ID          uuid.UUID `json:"id"`
	RewardID    uuid.UUID `json:"reward_id"`
	RewardTitle string    `json:"reward_title"`
	PointsSpent int       `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaginatedRewardResponse struct {
	Items      []entity.Reward `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}
