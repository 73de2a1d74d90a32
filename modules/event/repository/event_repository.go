package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"campus-pulse/core/database"
	"campus-pulse/core/entity"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	eventEntity "campus-pulse/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `id, title, slug, description, location, category, points, capacity,
	       start_time, end_time, status, creator_id, reviewer_id, review_notes, reviewed_at,
	       checkin_code, poster_key, created_at, updated_at`

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// ListFilter narrows the event listing. Zero values mean "no filter".
type ListFilter struct {
	Status    eventEntity.EventStatus
	Category  string
	CreatorID uuid.UUID
	From      time.Time
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *eventEntity.Event) (*eventEntity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
	List(ctx context.Context, filter ListFilter, params params.QueryParams) (*entity.Pagination[eventEntity.Event], error)
	Update(ctx context.Context, event *eventEntity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetPosterKey(ctx context.Context, id uuid.UUID, key string) error
	GetStats(ctx context.Context) (*eventEntity.EventStats, error)
}

func (r *EventRepository) Create(ctx context.Context, event *eventEntity.Event) (*eventEntity.Event, error) {
	query := `
		INSERT INTO events (title, slug, description, location, category, points, capacity,
		                    start_time, end_time, status, creator_id, checkin_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + eventColumns

	var created eventEntity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Slug, event.Description, event.Location, event.Category,
		event.Points, event.Capacity, event.StartTime, event.EndTime,
		event.Status, event.CreatorID, event.CheckinCode)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event eventEntity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}

	return &event, nil
}

// List returns events matching the filter, sorted by start time ascending.
func (r *EventRepository) List(ctx context.Context, filter ListFilter, queryParams params.QueryParams) (*entity.Pagination[eventEntity.Event], error) {
	conditions := []string{"1=1"}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.CreatorID != uuid.Nil {
		args = append(args, filter.CreatorID)
		conditions = append(conditions, fmt.Sprintf("creator_id = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", len(args)))
	}

	where := " FROM events WHERE " + strings.Join(conditions, " AND ")

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*)"+where, args...); err != nil {
		logger.Error("EventRepository:List:Count", err)
		return nil, err
	}

	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	args = append(args, queryParams.PageSize, offset)
	query := fmt.Sprintf("SELECT "+eventColumns+where+" ORDER BY start_time ASC LIMIT $%d OFFSET $%d",
		len(args)-1, len(args))

	var events []eventEntity.Event
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List:Select", err)
		return nil, err
	}

	return &entity.Pagination[eventEntity.Event]{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *EventRepository) Update(ctx context.Context, event *eventEntity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, category = $5, points = $6,
		    capacity = $7, start_time = $8, end_time = $9, status = $10,
		    reviewer_id = $11, review_notes = $12, reviewed_at = $13, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Location, event.Category,
		event.Points, event.Capacity, event.StartTime, event.EndTime, event.Status,
		event.ReviewerID, event.ReviewNotes, event.ReviewedAt)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}

	return nil
}

// Delete hard-deletes the event. RSVPs and notifications referencing it are
// left in place; read paths tolerate the orphans.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}

func (r *EventRepository) SetPosterKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE events SET poster_key = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, key)
	if err != nil {
		logger.Error("EventRepository:SetPosterKey", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetStats(ctx context.Context) (*eventEntity.EventStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events WHERE status = 'pending')  AS pending_events,
			(SELECT COUNT(*) FROM events WHERE status = 'approved') AS approved_events,
			(SELECT COUNT(*) FROM events WHERE status = 'rejected') AS rejected_events,
			(SELECT COUNT(*) FROM rsvps)                            AS total_rsvps,
			(SELECT COUNT(*) FROM event_attendance WHERE checked_in_at IS NOT NULL) AS total_checkins,
			(SELECT COUNT(*) FROM event_attendance WHERE attended_at IS NOT NULL)   AS total_attended
	`

	var stats eventEntity.EventStats
	err := r.DB.GetContext(ctx, &stats, query)
	if err != nil {
		logger.Error("EventRepository:GetStats", err)
		return nil, err
	}

	return &stats, nil
}
