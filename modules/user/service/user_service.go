package service

import (
	"context"

	"campus-pulse/core/constants"
	"campus-pulse/core/errors"
	"campus-pulse/modules/user/dto"
	"campus-pulse/modules/user/repository"

	"github.com/google/uuid"
)

// UserService exposes profiles and the points ledger.
type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	GetPointHistory(ctx context.Context, userID uuid.UUID) ([]dto.PointHistoryResponse, *errors.AppError)
	GetLeaderboard(ctx context.Context, limit int) (*dto.LeaderboardResponse, *errors.AppError)
	AwardPoints(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) *errors.AppError
	SpendPoints(ctx context.Context, userID uuid.UUID, cost int) *errors.AppError
}

func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	return dto.ToUserResponse(user), nil
}

func (s *UserService) GetPointHistory(ctx context.Context, userID uuid.UUID) ([]dto.PointHistoryResponse, *errors.AppError) {
	history, err := s.repo.GetPointHistory(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get point history", err)
	}

	result := make([]dto.PointHistoryResponse, 0, len(history))
	for i := range history {
		result = append(result, dto.ToPointHistoryResponse(&history[i]))
	}

	return result, nil
}

func (s *UserService) GetLeaderboard(ctx context.Context, limit int) (*dto.LeaderboardResponse, *errors.AppError) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := s.repo.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get leaderboard", err)
	}

	resp := &dto.LeaderboardResponse{Entries: make([]dto.LeaderboardEntryDTO, 0, len(entries))}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, dto.LeaderboardEntryDTO{
			Rank:     i + 1,
			UserID:   e.UserID,
			Username: e.Username,
			Points:   e.Points,
		})
	}

	return resp, nil
}

// AwardPoints credits the ledger for a completed survey. A zero award falls
// back to the standard survey points.
func (s *UserService) AwardPoints(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) *errors.AppError {
	if points <= 0 {
		points = constants.DefaultSurveyPoints
	}

	if err := s.repo.AwardPoints(ctx, userID, eventID, eventTitle, points); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to award points", err)
	}

	return nil
}

func (s *UserService) SpendPoints(ctx context.Context, userID uuid.UUID, cost int) *errors.AppError {
	ok, err := s.repo.SpendPoints(ctx, userID, cost)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to spend points", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrPreconditionFailed, "Not enough points", nil)
	}

	return nil
}
