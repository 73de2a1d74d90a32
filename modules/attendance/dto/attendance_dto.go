package dto

import (
	"time"

	"campus-pulse/modules/attendance/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CheckInRequest struct {
	Code string `json:"code" validate:"required"`
}

type SurveyRequest struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback    string `json:"feedback"`
	Improvement string `json:"improvement"`
}

// ===================== Response DTOs =====================

type CheckInResponse struct {
	EventID     uuid.UUID  `json:"event_id"`
	CheckedInAt *time.Time `json:"checked_in_at"`
}

type SurveyResponse struct {
	EventID       uuid.UUID `json:"event_id"`
	PointsAwarded int       `json:"points_awarded"`
}

type PaginatedRosterResponse struct {
	Items      []entity.RosterEntry `json:"items"`
	TotalItems int                  `json:"total_items"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}
