package dto

import (
	"time"

	"campus-pulse/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Message     string     `json:"message"`
	RelatedID   *uuid.UUID `json:"related_id,omitempty"`
	IsRead      bool       `json:"is_read"`
	IsImportant bool       `json:"is_important"`
	DisplayDate string     `json:"display_date"`
}

type PaginatedNotificationResponse struct {
	Items      []NotificationResponse `json:"items"`
	TotalItems int                    `json:"total_items"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
}

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

type SetImportantRequest struct {
	Important bool `json:"important"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// ToNotificationResponse normalizes the stored timestamp into a display date,
// falling back to "Unknown date" when it is absent.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	displayDate := "Unknown date"
	if n.CreatedAt != nil {
		displayDate = n.CreatedAt.Format(time.DateOnly)
	}

	return NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Message:     n.Message,
		RelatedID:   n.RelatedID,
		IsRead:      n.IsRead,
		IsImportant: n.IsImportant,
		DisplayDate: displayDate,
	}
}
