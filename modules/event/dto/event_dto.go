package dto

import (
	"time"

	"campus-pulse/modules/event/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateEventRequest accepts either a combined RFC3339 start_time or the
// legacy separate date + time strings.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Capacity    int    `json:"capacity"`
	StartTime   string `json:"start_time"` // RFC3339
	Date        string `json:"date"`       // YYYY-MM-DD
	Time        string `json:"time"`       // HH:MM
	EndTime     string `json:"end_time"`   // RFC3339 or HH:MM
}

type UpdateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Points      *int   `json:"points"`
	Capacity    *int   `json:"capacity"`
	StartTime   string `json:"start_time"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

type ReviewEventRequest struct {
	Status string `json:"status" validate:"required"` // approved | rejected
	Notes  string `json:"notes"`
}

type PosterUploadRequest struct {
	ContentType string `json:"content_type" validate:"required"`
}

// ===================== Response DTOs =====================

type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Category    string     `json:"category,omitempty"`
	Points      int        `json:"points"`
	Capacity    int        `json:"capacity"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Status      string     `json:"status"`
	CreatorID   uuid.UUID  `json:"creator_id"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	PosterURL   string     `json:"poster_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PaginatedEventResponse struct {
	Items      []EventResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

// QRPayloadResponse is what gets rendered into the event's check-in QR code.
type QRPayloadResponse struct {
	EventID    uuid.UUID `json:"event_id"`
	Code       string    `json:"code"`
	CheckinURL string    `json:"checkin_url"`
}

type PosterUploadResponse struct {
	UploadURL string `json:"upload_url"`
	PosterURL string `json:"poster_url"`
	Key       string `json:"key"`
}

// ===================== Mapper Functions =====================

func ToEventResponse(e *entity.Event, posterURL string) *EventResponse {
	resp := &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Location:    e.Location,
		Category:    e.Category,
		Points:      e.Points,
		Capacity:    e.Capacity,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Status:      string(e.Status),
		CreatorID:   e.CreatorID,
		PosterURL:   posterURL,
		CreatedAt:   e.CreatedAt,
	}

	if e.ReviewNotes != nil {
		resp.ReviewNotes = *e.ReviewNotes
	}

	return resp
}
