package repository

import (
	"context"
	"database/sql"
	"errors"

	"campus-pulse/core/database"
	"campus-pulse/core/entity"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	rsvpEntity "campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
)

// ErrEventFull is returned when the capacity check rejects a new RSVP.
var ErrEventFull = errors.New("event is at capacity")

const rsvpColumns = `id, user_id, event_id, status, email_sent, email_sent_at, created_at, updated_at`

// RsvpRepository handles rsvp database operations
type RsvpRepository struct {
	DB database.Database
}

func NewRsvpRepository(db database.Database) *RsvpRepository {
	return &RsvpRepository{DB: db}
}

// RsvpRepositoryInterface defines the repository contract
type RsvpRepositoryInterface interface {
	Upsert(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, capacity int) (*rsvpEntity.Rsvp, error)
	GetByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*rsvpEntity.Rsvp, error)
	GetDetails(ctx context.Context, rsvpID uuid.UUID) (*rsvpEntity.RsvpDetails, error)
	Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error)
	CountGoing(ctx context.Context, eventID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[rsvpEntity.UserRsvp], error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[rsvpEntity.EventRsvp], error)
	MarkEmailSent(ctx context.Context, rsvpID uuid.UUID) (bool, error)
}

// Upsert writes the reservation atomically. The event row is locked first so
// concurrent RSVPs against the last seat serialize; re-RSVPing an existing
// reservation never counts against capacity. capacity <= 0 means unlimited.
func (r *RsvpRepository) Upsert(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, capacity int) (*rsvpEntity.Rsvp, error) {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("RsvpRepository:Upsert:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	if capacity > 0 {
		var lockID uuid.UUID
		if err = tx.GetContext(ctx, &lockID, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID); err != nil {
			logger.Error("RsvpRepository:Upsert:Lock", err)
			return nil, err
		}

		var existing int
		err = tx.GetContext(ctx, &existing,
			`SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND user_id = $2`, eventID, userID)
		if err != nil {
			logger.Error("RsvpRepository:Upsert:Existing", err)
			return nil, err
		}

		if existing == 0 {
			var going int
			err = tx.GetContext(ctx, &going,
				`SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND status = 'going'`, eventID)
			if err != nil {
				logger.Error("RsvpRepository:Upsert:Count", err)
				return nil, err
			}
			if going >= capacity {
				return nil, ErrEventFull
			}
		}
	}

	query := `
		INSERT INTO rsvps (user_id, event_id, status)
		VALUES ($1, $2, 'going')
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET status = 'going', updated_at = NOW()
		RETURNING ` + rsvpColumns

	var rsvp rsvpEntity.Rsvp
	if err = tx.GetContext(ctx, &rsvp, query, userID, eventID); err != nil {
		logger.Error("RsvpRepository:Upsert", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("RsvpRepository:Upsert:Commit", err)
		return nil, err
	}

	return &rsvp, nil
}

func (r *RsvpRepository) GetByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*rsvpEntity.Rsvp, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE user_id = $1 AND event_id = $2`

	var rsvp rsvpEntity.Rsvp
	err := r.DB.GetContext(ctx, &rsvp, query, userID, eventID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("RsvpRepository:GetByUserAndEvent", err)
		return nil, err
	}

	return &rsvp, nil
}

// GetDetails loads the RSVP with the attendee and event joined in. The event
// join is LEFT so a reservation whose event has since been deleted still
// resolves.
func (r *RsvpRepository) GetDetails(ctx context.Context, rsvpID uuid.UUID) (*rsvpEntity.RsvpDetails, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.email_sent, r.email_sent_at,
		       r.created_at, r.updated_at,
		       u.email AS user_email, u.full_name AS user_full_name,
		       e.title AS event_title, e.location AS event_location,
		       e.description AS event_description,
		       e.start_time AS event_start_time, e.end_time AS event_end_time
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN events e ON e.id = r.event_id
		WHERE r.id = $1`

	var details rsvpEntity.RsvpDetails
	err := r.DB.GetContext(ctx, &details, query, rsvpID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("RsvpRepository:GetDetails", err)
		return nil, err
	}

	return &details, nil
}

func (r *RsvpRepository) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	query := `DELETE FROM rsvps WHERE user_id = $1 AND event_id = $2 RETURNING id`

	var id uuid.UUID
	err := r.DB.QueryRowContext(ctx, query, userID, eventID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		logger.Error("RsvpRepository:Delete", err)
		return false, err
	}

	return true, nil
}

func (r *RsvpRepository) CountGoing(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND status = 'going'`, eventID)
	if err != nil {
		logger.Error("RsvpRepository:CountGoing", err)
		return 0, err
	}

	return count, nil
}

func (r *RsvpRepository) ListByUser(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[rsvpEntity.UserRsvp], error) {
	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rsvps WHERE user_id = $1`, userID)
	if err != nil {
		logger.Error("RsvpRepository:ListByUser:Count", err)
		return nil, err
	}

	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.email_sent, r.email_sent_at,
		       r.created_at, r.updated_at,
		       e.title AS event_title, e.location AS event_location,
		       e.start_time AS event_start_time, e.status AS event_status
		FROM rsvps r
		LEFT JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	items := []rsvpEntity.UserRsvp{}
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	err = r.DB.SelectContext(ctx, &items, query, userID, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("RsvpRepository:ListByUser", err)
		return nil, err
	}

	return &entity.Pagination[rsvpEntity.UserRsvp]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *RsvpRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[rsvpEntity.EventRsvp], error) {
	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("RsvpRepository:ListByEvent:Count", err)
		return nil, err
	}

	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.email_sent, r.email_sent_at,
		       r.created_at, r.updated_at,
		       u.email AS user_email, u.full_name AS user_full_name
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at ASC
		LIMIT $2 OFFSET $3`

	items := []rsvpEntity.EventRsvp{}
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	err = r.DB.SelectContext(ctx, &items, query, eventID, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("RsvpRepository:ListByEvent", err)
		return nil, err
	}

	return &entity.Pagination[rsvpEntity.EventRsvp]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

// MarkEmailSent flips the sent flag and reports whether this call did the
// flip. A false return means another worker already sent the email.
func (r *RsvpRepository) MarkEmailSent(ctx context.Context, rsvpID uuid.UUID) (bool, error) {
	query := `
		UPDATE rsvps
		SET email_sent = TRUE, email_sent_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND email_sent = FALSE
		RETURNING id`

	var id uuid.UUID
	err := r.DB.QueryRowContext(ctx, query, rsvpID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		logger.Error("RsvpRepository:MarkEmailSent", err)
		return false, err
	}

	return true, nil
}
