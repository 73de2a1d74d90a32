package service

import (
	"context"

	"campus-pulse/core/constants"
	"campus-pulse/core/errors"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	"campus-pulse/modules/attendance/dto"
	"campus-pulse/modules/attendance/repository"

	eventEntity "campus-pulse/modules/event/entity"
	rsvpEntity "campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
)

// eventGetter is the slice of the event repository this module reads.
type eventGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// rsvpChecker answers whether a user reserved a spot for an event.
type rsvpChecker interface {
	GetByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*rsvpEntity.Rsvp, error)
}

// pointsAwarder is the slice of the user service that credits survey points.
type pointsAwarder interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) *errors.AppError
}

// attendanceNotifier is the slice of the notification service this module
// emits on.
type attendanceNotifier interface {
	NotifyCheckin(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error
	NotifyPoints(ctx context.Context, userID uuid.UUID, relatedID uuid.UUID, points int, reason string) error
}

// AttendanceService handles check-in and survey business logic
type AttendanceService struct {
	repo     repository.AttendanceRepositoryInterface
	events   eventGetter
	rsvps    rsvpChecker
	points   pointsAwarder
	notifier attendanceNotifier
}

// AttendanceServiceInterface defines the service contract
type AttendanceServiceInterface interface {
	CheckIn(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, code string) (*dto.CheckInResponse, *errors.AppError)
	SubmitSurvey(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.SurveyRequest) (*dto.SurveyResponse, *errors.AppError)
	GetRoster(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedRosterResponse, *errors.AppError)
}

func NewAttendanceService(repo repository.AttendanceRepositoryInterface, events eventGetter, rsvps rsvpChecker, points pointsAwarder, notifier attendanceNotifier) AttendanceServiceInterface {
	return &AttendanceService{
		repo:     repo,
		events:   events,
		rsvps:    rsvps,
		points:   points,
		notifier: notifier,
	}
}

// CheckIn validates the scanned code and records presence. Scanning twice is
// fine; the first timestamp wins.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, code string) (*dto.CheckInResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.Status != eventEntity.EventStatusApproved {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Event is not open for check-in", nil)
	}
	if code == "" || code != event.CheckinCode {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid check-in code", nil)
	}

	existing, err := s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendance", err)
	}
	alreadyCheckedIn := existing != nil && existing.CheckedInAt != nil

	attendance, err := s.repo.CheckIn(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check in", err)
	}

	if !alreadyCheckedIn {
		if notifErr := s.notifier.NotifyCheckin(ctx, userID, eventID, event.Title); notifErr != nil {
			logger.Error("AttendanceService:CheckIn:Notify", notifErr)
		}
	}

	return &dto.CheckInResponse{
		EventID:     eventID,
		CheckedInAt: attendance.CheckedInAt,
	}, nil
}

// SubmitSurvey stores the post-event survey and credits points exactly once.
// The conditional write in the repository is what guarantees the once: a
// concurrent duplicate comes back unapplied and earns nothing.
func (s *AttendanceService) SubmitSurvey(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.SurveyRequest) (*dto.SurveyResponse, *errors.AppError) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Rating must be between 1 and 5", nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	rsvp, err := s.rsvps.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get reservation", err)
	}
	if rsvp == nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "You must RSVP to this event before taking the survey", nil)
	}

	attendance, err := s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendance", err)
	}
	if attendance == nil || attendance.CheckedInAt == nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "You must check in before taking the survey", nil)
	}
	if attendance.SurveySubmittedAt != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Survey already submitted", nil)
	}

	applied, err := s.repo.SubmitSurvey(ctx, userID, eventID, req.Rating, req.Feedback, req.Improvement)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to submit survey", err)
	}
	if !applied {
		// Lost the race to a duplicate submission.
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Survey already submitted", nil)
	}

	points := event.Points
	if points <= 0 {
		points = constants.DefaultSurveyPoints
	}

	if appErr := s.points.AwardPoints(ctx, userID, eventID, event.Title, points); appErr != nil {
		// The survey is stored; points failing to post is a bug to fix, not
		// a reason to fail the submission.
		logger.Error("AttendanceService:SubmitSurvey:Award", appErr)
	} else if notifErr := s.notifier.NotifyPoints(ctx, userID, eventID, points, "Survey completed: "+event.Title); notifErr != nil {
		logger.Error("AttendanceService:SubmitSurvey:Notify", notifErr)
	}

	return &dto.SurveyResponse{
		EventID:       eventID,
		PointsAwarded: points,
	}, nil
}

func (s *AttendanceService) GetRoster(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedRosterResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	page, err := s.repo.GetRoster(ctx, eventID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get roster", err)
	}

	return &dto.PaginatedRosterResponse{
		Items:      page.Items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}
