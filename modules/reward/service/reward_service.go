package service

import (
	"context"

	"campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	"campus-pulse/modules/reward/dto"
	rewardEntity "campus-pulse/modules/reward/entity"
	"campus-pulse/modules/reward/repository"

	"github.com/google/uuid"
)

// pointsSpender is the slice of the user service that debits points.
type pointsSpender interface {
	SpendPoints(ctx context.Context, userID uuid.UUID, cost int) *errors.AppError
}

// redemptionNotifier is the slice of the notification service this module
// emits on.
type redemptionNotifier interface {
	NotifyPoints(ctx context.Context, userID uuid.UUID, relatedID uuid.UUID, points int, reason string) error
}

// RewardService handles catalog and redemption business logic
type RewardService struct {
	repo     repository.RewardRepositoryInterface
	points   pointsSpender
	notifier redemptionNotifier
}

// RewardServiceInterface defines the service contract
type RewardServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateRewardRequest) (*rewardEntity.Reward, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*rewardEntity.Reward, *errors.AppError)
	List(ctx context.Context, includeInactive bool, queryParams params.QueryParams) (*dto.PaginatedRewardResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRewardRequest) (*rewardEntity.Reward, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	Redeem(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (*dto.RedemptionResponse, *errors.AppError)
	ListMyRedemptions(ctx context.Context, userID uuid.UUID) ([]rewardEntity.Redemption, *errors.AppError)
}

func NewRewardService(repo repository.RewardRepositoryInterface, points pointsSpender, notifier redemptionNotifier) RewardServiceInterface {
	return &RewardService{
		repo:     repo,
		points:   points,
		notifier: notifier,
	}
}

func (s *RewardService) Create(ctx context.Context, req *dto.CreateRewardRequest) (*rewardEntity.Reward, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.Cost < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Cost must be positive", nil)
	}
	if req.Stock < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Stock cannot be negative", nil)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	reward, err := s.repo.Create(ctx, &rewardEntity.Reward{
		Title:       req.Title,
		Description: req.Description,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Active:      active,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create reward", err)
	}

	return reward, nil
}

func (s *RewardService) GetByID(ctx context.Context, id uuid.UUID) (*rewardEntity.Reward, *errors.AppError) {
	reward, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get reward", err)
	}
	if reward == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Reward not found", nil)
	}

	return reward, nil
}

func (s *RewardService) List(ctx context.Context, includeInactive bool, queryParams params.QueryParams) (*dto.PaginatedRewardResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, !includeInactive, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list rewards", err)
	}

	return toPaginatedRewards(page), nil
}

func (s *RewardService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRewardRequest) (*rewardEntity.Reward, *errors.AppError) {
	reward, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get reward", err)
	}
	if reward == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Reward not found", nil)
	}

	if req.Title != "" {
		reward.Title = req.Title
	}
	if req.Description != "" {
		reward.Description = req.Description
	}
	if req.Cost != nil {
		if *req.Cost < 1 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Cost must be positive", nil)
		}
		reward.Cost = *req.Cost
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Stock cannot be negative", nil)
		}
		reward.Stock = *req.Stock
	}
	if req.Active != nil {
		reward.Active = *req.Active
	}

	if err = s.repo.Update(ctx, reward); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update reward", err)
	}

	return reward, nil
}

func (s *RewardService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	reward, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get reward", err)
	}
	if reward == nil {
		return errors.NewAppError(errors.ErrNotFound, "Reward not found", nil)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete reward", err)
	}

	return nil
}

// Redeem exchanges points for one unit. Stock is taken first with a
// conditional decrement; if the points debit then fails the unit is put back.
func (s *RewardService) Redeem(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (*dto.RedemptionResponse, *errors.AppError) {
	reward, err := s.repo.GetByID(ctx, rewardID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get reward", err)
	}
	if reward == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Reward not found", nil)
	}
	if !reward.Active {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Reward is not available", nil)
	}

	taken, err := s.repo.TakeStock(ctx, rewardID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reserve stock", err)
	}
	if !taken {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Reward is out of stock", nil)
	}

	if appErr := s.points.SpendPoints(ctx, userID, reward.Cost); appErr != nil {
		if restoreErr := s.repo.RestoreStock(ctx, rewardID); restoreErr != nil {
			logger.Error("RewardService:Redeem:Restore", restoreErr)
		}
		return nil, appErr
	}

	redemption, err := s.repo.CreateRedemption(ctx, userID, rewardID, reward.Cost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record redemption", err)
	}

	if notifErr := s.notifier.NotifyPoints(ctx, userID, rewardID, -reward.Cost, "Redeemed: "+reward.Title); notifErr != nil {
		logger.Error("RewardService:Redeem:Notify", notifErr)
	}

	return &dto.RedemptionResponse{
		ID:          redemption.ID,
		RewardID:    rewardID,
		RewardTitle: reward.Title,
		PointsSpent: reward.Cost,
		CreatedAt:   redemption.CreatedAt,
	}, nil
}

func (s *RewardService) ListMyRedemptions(ctx context.Context, userID uuid.UUID) ([]rewardEntity.Redemption, *errors.AppError) {
	items, err := s.repo.ListRedemptions(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list redemptions", err)
	}

	return items, nil
}

func toPaginatedRewards(page *entity.Pagination[rewardEntity.Reward]) *dto.PaginatedRewardResponse {
	return &dto.PaginatedRewardResponse{
		Items:      page.Items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
