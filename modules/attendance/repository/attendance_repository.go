package repository

import (
	"context"
	"database/sql"

	"campus-pulse/core/database"
	"campus-pulse/core/entity"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	attendanceEntity "campus-pulse/modules/attendance/entity"

	"github.com/google/uuid"
)

const attendanceColumns = `user_id, event_id, checked_in_at, attended_at, survey_rating,
	       survey_feedback, survey_improvement, survey_submitted_at, created_at`

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	DB database.Database
}

func NewAttendanceRepository(db database.Database) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// AttendanceRepositoryInterface defines the repository contract
type AttendanceRepositoryInterface interface {
	GetByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*attendanceEntity.Attendance, error)
	CheckIn(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*attendanceEntity.Attendance, error)
	SubmitSurvey(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, rating int, feedback string, improvement string) (bool, error)
	GetRoster(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[attendanceEntity.RosterEntry], error)
}

func (r *AttendanceRepository) GetByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*attendanceEntity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM event_attendance WHERE user_id = $1 AND event_id = $2`

	var attendance attendanceEntity.Attendance
	err := r.DB.GetContext(ctx, &attendance, query, userID, eventID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("AttendanceRepository:GetByUserAndEvent", err)
		return nil, err
	}

	return &attendance, nil
}

// CheckIn records the scan. Rescanning is harmless: the COALESCE keeps the
// first check-in timestamp.
func (r *AttendanceRepository) CheckIn(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*attendanceEntity.Attendance, error) {
	query := `
		INSERT INTO event_attendance (user_id, event_id, checked_in_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET checked_in_at = COALESCE(event_attendance.checked_in_at, NOW())
		RETURNING ` + attendanceColumns

	var attendance attendanceEntity.Attendance
	err := r.DB.GetContext(ctx, &attendance, query, userID, eventID)
	if err != nil {
		logger.Error("AttendanceRepository:CheckIn", err)
		return nil, err
	}

	return &attendance, nil
}

// SubmitSurvey stores the survey and stamps attendance in one conditional
// write. The returned bool reports whether this call applied: false means a
// survey was already on file, so callers award points only on true.
func (r *AttendanceRepository) SubmitSurvey(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, rating int, feedback string, improvement string) (bool, error) {
	query := `
		UPDATE event_attendance
		SET survey_rating = $3, survey_feedback = $4, survey_improvement = $5,
		    survey_submitted_at = NOW(), attended_at = COALESCE(attended_at, NOW())
		WHERE user_id = $1 AND event_id = $2
		  AND checked_in_at IS NOT NULL AND survey_submitted_at IS NULL
		RETURNING user_id`

	var id uuid.UUID
	err := r.DB.QueryRowContext(ctx, query, userID, eventID, rating, feedback, improvement).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		logger.Error("AttendanceRepository:SubmitSurvey", err)
		return false, err
	}

	return true, nil
}

func (r *AttendanceRepository) GetRoster(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*entity.Pagination[attendanceEntity.RosterEntry], error) {
	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("AttendanceRepository:GetRoster:Count", err)
		return nil, err
	}

	query := `
		SELECT u.id AS user_id, u.username, u.full_name, u.email,
		       r.created_at AS rsvped_at, a.checked_in_at, a.attended_at
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN event_attendance a ON a.user_id = r.user_id AND a.event_id = r.event_id
		WHERE r.event_id = $1
		ORDER BY r.created_at ASC
		LIMIT $2 OFFSET $3`

	items := []attendanceEntity.RosterEntry{}
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	err = r.DB.SelectContext(ctx, &items, query, eventID, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("AttendanceRepository:GetRoster", err)
		return nil, err
	}

	return &entity.Pagination[attendanceEntity.RosterEntry]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}
