package service

import (
	"context"
	"fmt"

	"campus-pulse/core/constants"
	"campus-pulse/core/params"
	"campus-pulse/modules/notification/dto"
	"campus-pulse/modules/notification/entity"
	"campus-pulse/modules/notification/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create inserts a notification record. Emitters treat failures as
// best-effort: they log and move on, the primary write stands.
func (s *NotificationService) Create(ctx context.Context, userID uuid.UUID, notifType string, message string, relatedID *uuid.UUID) error {
	notif := &entity.Notification{
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		RelatedID: relatedID,
	}
	return s.repo.Create(ctx, notif)
}

// Typed helpers fixing the type and message template.

func (s *NotificationService) NotifyEventApproved(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error {
	msg := fmt.Sprintf("Your event %q has been approved and is now live", eventTitle)
	return s.Create(ctx, userID, constants.NotificationTypeEvent, msg, &eventID)
}

func (s *NotificationService) NotifyEventRejected(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, notes string) error {
	msg := fmt.Sprintf("Your event %q was not approved", eventTitle)
	if notes != "" {
		msg += ": " + notes
	}
	return s.Create(ctx, userID, constants.NotificationTypeAdmin, msg, &eventID)
}

func (s *NotificationService) NotifyRsvp(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error {
	msg := fmt.Sprintf("You're going to %s! A confirmation email is on its way", eventTitle)
	return s.Create(ctx, userID, constants.NotificationTypeRsvp, msg, &eventID)
}

func (s *NotificationService) NotifyCheckin(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string) error {
	msg := fmt.Sprintf("Checked in to %s. Complete the survey afterwards to earn points", eventTitle)
	return s.Create(ctx, userID, constants.NotificationTypeAttendance, msg, &eventID)
}

func (s *NotificationService) NotifyPoints(ctx context.Context, userID uuid.UUID, relatedID uuid.UUID, points int, reason string) error {
	msg := fmt.Sprintf("You earned %d points for %s", points, reason)
	if points < 0 {
		msg = fmt.Sprintf("You spent %d points on %s", -points, reason)
	}
	return s.Create(ctx, userID, constants.NotificationTypePoints, msg, &relatedID)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, error) {
	page, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToNotificationResponse(&page.Items[i]))
	}

	return &dto.PaginatedNotificationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) SetImportant(ctx context.Context, userID uuid.UUID, id uuid.UUID, important bool) error {
	return s.repo.SetImportant(ctx, userID, id, important)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// BulkDelete fans out individual deletes concurrently. The aggregate fails
// if any one delete fails; partial progress is not rolled back.
func (s *NotificationService) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			return s.repo.Delete(gctx, userID, id)
		})
	}
	return g.Wait()
}
