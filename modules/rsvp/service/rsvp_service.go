package service

import (
	"context"

	"campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	"campus-pulse/core/queue"
	"campus-pulse/modules/rsvp/dto"
	rsvpEntity "campus-pulse/modules/rsvp/entity"
	"campus-pulse/modules/rsvp/repository"

	eventEntity "campus-pulse/modules/event/entity"

	"github.com/google/uuid"
)

// eventGetter is the slice of the event repository this module reads.
type eventGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// rsvpNotifier is the slice of the notification service this module emits on.
type rsvpNotifier interface {
	NotifyRsvp(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error
}

// RsvpService handles reservation business logic
type RsvpService struct {
	repo     repository.RsvpRepositoryInterface
	events   eventGetter
	notifier rsvpNotifier
	queue    queue.Client
}

// RsvpServiceInterface defines the service contract
type RsvpServiceInterface interface {
	Rsvp(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpResponse, *errors.AppError)
	Cancel(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	GetStatus(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpStatusResponse, *errors.AppError)
	ListMine(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedMyRsvpResponse, *errors.AppError)
	ListForEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedEventRsvpResponse, *errors.AppError)
	SendConfirmation(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpStatusResponse, *errors.AppError)
}

func NewRsvpService(repo repository.RsvpRepositoryInterface, events eventGetter, notifier rsvpNotifier, queueClient queue.Client) RsvpServiceInterface {
	return &RsvpService{
		repo:     repo,
		events:   events,
		notifier: notifier,
		queue:    queueClient,
	}
}

// Rsvp reserves a spot. The write is a single atomic upsert, so repeating the
// call never creates a second reservation or a second confirmation email.
func (s *RsvpService) Rsvp(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.Status != eventEntity.EventStatusApproved {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Event is not open for RSVPs", nil)
	}

	rsvp, err := s.repo.Upsert(ctx, userID, eventID, event.Capacity)
	if err == repository.ErrEventFull {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Event is full", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create RSVP", err)
	}

	if notifErr := s.notifier.NotifyRsvp(ctx, userID, eventID, event.Title); notifErr != nil {
		logger.Error("RsvpService:Rsvp:Notify", notifErr)
	}

	s.enqueueConfirmation(rsvp)

	return dto.ToRsvpResponse(rsvp), nil
}

// Cancel frees the user's spot. Cancelling when no reservation exists is a
// no-op, not an error: the end state the caller asked for already holds.
func (s *RsvpService) Cancel(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	_, err := s.repo.Delete(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to cancel RSVP", err)
	}

	return nil
}

func (s *RsvpService) GetStatus(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpStatusResponse, *errors.AppError) {
	rsvp, err := s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get RSVP", err)
	}
	if rsvp == nil {
		return &dto.RsvpStatusResponse{}, nil
	}

	return &dto.RsvpStatusResponse{
		Going:     rsvp.Status == "going",
		EmailSent: rsvp.EmailSent,
		RsvpedAt:  &rsvp.CreatedAt,
	}, nil
}

func (s *RsvpService) ListMine(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedMyRsvpResponse, *errors.AppError) {
	page, err := s.repo.ListByUser(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list RSVPs", err)
	}

	return toPaginatedMyRsvps(page), nil
}

// ListForEvent returns an event's attendee list with emails, for organizers.
func (s *RsvpService) ListForEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedEventRsvpResponse, *errors.AppError) {
	page, err := s.repo.ListByEvent(ctx, eventID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list RSVPs", err)
	}

	items := make([]dto.EventRsvpResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToEventRsvpResponse(&page.Items[i]))
	}

	return &dto.PaginatedEventRsvpResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// SendConfirmation re-requests the confirmation email. The task id and the
// sent flag make this a no-op when the email already went out, so clients can
// call it freely.
func (s *RsvpService) SendConfirmation(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.RsvpStatusResponse, *errors.AppError) {
	rsvp, err := s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get RSVP", err)
	}
	if rsvp == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "RSVP not found", nil)
	}

	if !rsvp.EmailSent {
		s.enqueueConfirmation(rsvp)
	}

	return &dto.RsvpStatusResponse{
		Going:     rsvp.Status == "going",
		EmailSent: rsvp.EmailSent,
		RsvpedAt:  &rsvp.CreatedAt,
	}, nil
}

func (s *RsvpService) enqueueConfirmation(rsvp *rsvpEntity.Rsvp) {
	err := s.queue.EnqueueRsvpEmail(queue.RsvpEmailPayload{
		RsvpID:  rsvp.ID,
		UserID:  rsvp.UserID,
		EventID: rsvp.EventID,
	})
	if err != nil {
		logger.Error("RsvpService:EnqueueConfirmation", err)
	}
}

func toPaginatedMyRsvps(page *entity.Pagination[rsvpEntity.UserRsvp]) *dto.PaginatedMyRsvpResponse {
	items := make([]dto.MyRsvpResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToMyRsvpResponse(&page.Items[i]))
	}

	return &dto.PaginatedMyRsvpResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
