package dto

import (
	"time"

	"campus-pulse/modules/user/entity"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	SignupMethod string    `json:"signup_method"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
}

type PointHistoryResponse struct {
	EventID    uuid.UUID `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Points     int       `json:"points"`
	EarnedAt   time.Time `json:"earned_at"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntryDTO `json:"entries"`
}

type LeaderboardEntryDTO struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Points   int       `json:"points"`
}

func ToUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         u.Role,
		SignupMethod: u.SignupMethod,
		Points:       u.Points,
		CreatedAt:    u.CreatedAt,
	}
}

func ToPointHistoryResponse(h *entity.PointHistory) PointHistoryResponse {
	return PointHistoryResponse{
		EventID:    h.EventID,
		EventTitle: h.EventTitle,
		Points:     h.Points,
		EarnedAt:   h.CreatedAt,
	}
}
