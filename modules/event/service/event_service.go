package service

import (
	"context"
	"fmt"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	"campus-pulse/core/storage"
	"campus-pulse/core/utils"
	"campus-pulse/modules/event/dto"
	eventEntity "campus-pulse/modules/event/entity"
	"campus-pulse/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// notificationEmitter is the slice of the notification service the event
// module needs.
type notificationEmitter interface {
	NotifyEventApproved(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error
	NotifyEventRejected(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, notes string) error
}

// EventService handles event lifecycle business logic
type EventService struct {
	repo     repository.EventRepositoryInterface
	notifier notificationEmitter
	store    storage.Storage
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	Create(ctx context.Context, creatorID uuid.UUID, isAdmin bool, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	List(ctx context.Context, filter repository.ListFilter, queryParams params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError)
	Update(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID, isAdmin bool, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Review(ctx context.Context, eventID uuid.UUID, reviewerID uuid.UUID, req *dto.ReviewEventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, eventID uuid.UUID) *errors.AppError
	GetQRPayload(ctx context.Context, eventID uuid.UUID) (*dto.QRPayloadResponse, *errors.AppError)
	PresignPoster(ctx context.Context, eventID uuid.UUID, contentType string) (*dto.PosterUploadResponse, *errors.AppError)
	GetStats(ctx context.Context) (*eventEntity.EventStats, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface, notifier notificationEmitter, store storage.Storage) EventServiceInterface {
	return &EventService{
		repo:     repo,
		notifier: notifier,
		store:    store,
	}
}

// Create inserts a new event. Admin submissions go live immediately;
// everyone else starts in pending review.
func (s *EventService) Create(ctx context.Context, creatorID uuid.UUID, isAdmin bool, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.Capacity < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Capacity cannot be negative", nil)
	}

	startTime, err := dto.ResolveStartTime(req.StartTime, req.Date, req.Time)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	endTime, err := dto.ResolveEndTime(startTime, req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid end time", err)
	}

	status := eventEntity.EventStatusPending
	if isAdmin {
		status = eventEntity.EventStatusApproved
	}

	checkinCode, err := utils.GenerateCheckinCode()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate check-in code", err)
	}

	event := &eventEntity.Event{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Points:      req.Points,
		Capacity:    req.Capacity,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      status,
		CreatorID:   creatorID,
		CheckinCode: checkinCode,
	}

	created, repoErr := s.repo.Create(ctx, event)
	if repoErr != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", repoErr)
	}

	if created.Status == eventEntity.EventStatusApproved {
		if notifErr := s.notifier.NotifyEventApproved(ctx, creatorID, created.ID, created.Title); notifErr != nil {
			logger.Error("EventService:Create:Notify", notifErr)
		}
	}

	return dto.ToEventResponse(created, s.posterURL(created)), nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(event, s.posterURL(event)), nil
}

func (s *EventService) List(ctx context.Context, filter repository.ListFilter, queryParams params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, filter, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	return s.toPaginatedResponse(page), nil
}

// Update patches event fields. When the patch moves the status into
// "approved" from anything else, exactly one approval notification goes out;
// re-approving an approved event emits nothing.
func (s *EventService) Update(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID, isAdmin bool, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if !isAdmin && event.CreatorID != actorID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized to update this event", nil)
	}

	prevStatus := event.Status

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.Category != "" {
		event.Category = req.Category
	}
	if req.Points != nil {
		event.Points = *req.Points
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Capacity cannot be negative", nil)
		}
		event.Capacity = *req.Capacity
	}

	if req.StartTime != "" || (req.Date != "" && req.Time != "") {
		startTime, resolveErr := dto.ResolveStartTime(req.StartTime, req.Date, req.Time)
		if resolveErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, resolveErr.Error(), resolveErr)
		}
		event.StartTime = startTime
	}
	if req.EndTime != "" {
		endTime, resolveErr := dto.ResolveEndTime(event.StartTime, req.EndTime)
		if resolveErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid end time", resolveErr)
		}
		event.EndTime = endTime
	}

	if req.Status != "" {
		if !isAdmin {
			return nil, errors.NewAppError(errors.ErrForbidden, "Only admins can change event status", nil)
		}
		newStatus := eventEntity.EventStatus(req.Status)
		if newStatus != eventEntity.EventStatusPending &&
			newStatus != eventEntity.EventStatusApproved &&
			newStatus != eventEntity.EventStatusRejected {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event status", nil)
		}
		event.Status = newStatus
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	if prevStatus != eventEntity.EventStatusApproved && event.Status == eventEntity.EventStatusApproved {
		if notifErr := s.notifier.NotifyEventApproved(ctx, event.CreatorID, event.ID, event.Title); notifErr != nil {
			logger.Error("EventService:Update:Notify", notifErr)
		}
	}

	return dto.ToEventResponse(event, s.posterURL(event)), nil
}

// Review applies an admin decision. A decision matching the current status
// is a no-op: no write, no notification.
func (s *EventService) Review(ctx context.Context, eventID uuid.UUID, reviewerID uuid.UUID, req *dto.ReviewEventRequest) (*dto.EventResponse, *errors.AppError) {
	newStatus := eventEntity.EventStatus(req.Status)
	if newStatus != eventEntity.EventStatusApproved && newStatus != eventEntity.EventStatusRejected {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Review status must be approved or rejected", nil)
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.Status == newStatus {
		return dto.ToEventResponse(event, s.posterURL(event)), nil
	}

	now := time.Now()
	event.Status = newStatus
	event.ReviewerID = &reviewerID
	event.ReviewedAt = &now
	if req.Notes != "" {
		event.ReviewNotes = &req.Notes
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to review event", err)
	}

	var notifErr error
	switch newStatus {
	case eventEntity.EventStatusApproved:
		notifErr = s.notifier.NotifyEventApproved(ctx, event.CreatorID, event.ID, event.Title)
	case eventEntity.EventStatusRejected:
		notifErr = s.notifier.NotifyEventRejected(ctx, event.CreatorID, event.ID, event.Title, req.Notes)
	}
	if notifErr != nil {
		logger.Error("EventService:Review:Notify", notifErr)
	}

	return dto.ToEventResponse(event, s.posterURL(event)), nil
}

func (s *EventService) Delete(ctx context.Context, eventID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err = s.repo.Delete(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	return nil
}

// GetQRPayload returns the code and URL rendered into the event's QR poster.
func (s *EventService) GetQRPayload(ctx context.Context, eventID uuid.UUID) (*dto.QRPayloadResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Server configuration error", nil)
	}

	checkinURL := fmt.Sprintf("%s/api/v1/private/events/%s/checkin?code=%s",
		cfg.Server.BaseURL, event.ID, event.CheckinCode)

	return &dto.QRPayloadResponse{
		EventID:    event.ID,
		Code:       event.CheckinCode,
		CheckinURL: checkinURL,
	}, nil
}

func (s *EventService) PresignPoster(ctx context.Context, eventID uuid.UUID, contentType string) (*dto.PosterUploadResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	key := fmt.Sprintf("posters/%s-%s", event.ID, utils.GenerateID())
	uploadURL, err := s.store.PresignPosterUpload(ctx, key, contentType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to presign upload", err)
	}

	if err = s.repo.SetPosterKey(ctx, eventID, key); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store poster key", err)
	}

	return &dto.PosterUploadResponse{
		UploadURL: uploadURL,
		PosterURL: s.store.ObjectURL(key),
		Key:       key,
	}, nil
}

func (s *EventService) GetStats(ctx context.Context) (*eventEntity.EventStats, *errors.AppError) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get stats", err)
	}
	return stats, nil
}

func (s *EventService) posterURL(event *eventEntity.Event) string {
	if event.PosterKey == nil || *event.PosterKey == "" {
		return ""
	}
	return s.store.ObjectURL(*event.PosterKey)
}

func (s *EventService) toPaginatedResponse(page *entity.Pagination[eventEntity.Event]) *dto.PaginatedEventResponse {
	items := make([]dto.EventResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToEventResponse(&page.Items[i], s.posterURL(&page.Items[i])))
	}

	return &dto.PaginatedEventResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
