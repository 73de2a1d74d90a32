package repository

import (
	"context"
	"database/sql"

	"campus-pulse/core/database"
	"campus-pulse/core/entity"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	rewardEntity "campus-pulse/modules/reward/entity"

	"github.com/google/uuid"
)

const rewardColumns = `id, title, description, cost, stock, active, created_at, updated_at`

// RewardRepository handles reward database operations
type RewardRepository struct {
	DB database.Database
}

func NewRewardRepository(db database.Database) *RewardRepository {
	return &RewardRepository{DB: db}
}

// RewardRepositoryInterface defines the repository contract
type RewardRepositoryInterface interface {
	Create(ctx context.Context, reward *rewardEntity.Reward) (*rewardEntity.Reward, error)
	GetByID(ctx context.Context, id uuid.UUID) (*rewardEntity.Reward, error)
	List(ctx context.Context, activeOnly bool, queryParams params.QueryParams) (*entity.Pagination[rewardEntity.Reward], error)
	Update(ctx context.Context, reward *rewardEntity.Reward) error
	Delete(ctx context.Context, id uuid.UUID) error
	TakeStock(ctx context.Context, id uuid.UUID) (bool, error)
	RestoreStock(ctx context.Context, id uuid.UUID) error
	CreateRedemption(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID, pointsSpent int) (*rewardEntity.Redemption, error)
	ListRedemptions(ctx context.Context, userID uuid.UUID) ([]rewardEntity.Redemption, error)
}

func (r *RewardRepository) Create(ctx context.Context, reward *rewardEntity.Reward) (*rewardEntity.Reward, error) {
	query := `
		INSERT INTO rewards (title, description, cost, stock, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rewardColumns

	var created rewardEntity.Reward
	err := r.DB.GetContext(ctx, &created, query,
		reward.Title, reward.Description, reward.Cost, reward.Stock, reward.Active)
	if err != nil {
		logger.Error("RewardRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *RewardRepository) GetByID(ctx context.Context, id uuid.UUID) (*rewardEntity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`

	var reward rewardEntity.Reward
	err := r.DB.GetContext(ctx, &reward, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("RewardRepository:GetByID", err)
		return nil, err
	}

	return &reward, nil
}

func (r *RewardRepository) List(ctx context.Context, activeOnly bool, queryParams params.QueryParams) (*entity.Pagination[rewardEntity.Reward], error) {
	where := ""
	if activeOnly {
		where = "WHERE active = TRUE"
	}

	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rewards `+where)
	if err != nil {
		logger.Error("RewardRepository:List:Count", err)
		return nil, err
	}

	query := `SELECT ` + rewardColumns + ` FROM rewards ` + where + `
		ORDER BY cost ASC
		LIMIT $1 OFFSET $2`

	items := []rewardEntity.Reward{}
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	err = r.DB.SelectContext(ctx, &items, query, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("RewardRepository:List", err)
		return nil, err
	}

	return &entity.Pagination[rewardEntity.Reward]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *RewardRepository) Update(ctx context.Context, reward *rewardEntity.Reward) error {
	query := `
		UPDATE rewards
		SET title = $2, description = $3, cost = $4, stock = $5, active = $6, updated_at = NOW()
		WHERE id = $1`

	err := r.DB.ExecContext(ctx, query,
		reward.ID, reward.Title, reward.Description, reward.Cost, reward.Stock, reward.Active)
	if err != nil {
		logger.Error("RewardRepository:Update", err)
		return err
	}

	return nil
}

func (r *RewardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	if err != nil {
		logger.Error("RewardRepository:Delete", err)
		return err
	}

	return nil
}

// TakeStock decrements one unit if any is left; false means sold out or
// inactive. The conditional update is what keeps two last-unit redemptions
// from both succeeding.
func (r *RewardRepository) TakeStock(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE rewards
		SET stock = stock - 1, updated_at = NOW()
		WHERE id = $1 AND active = TRUE AND stock > 0
		RETURNING id`

	var taken uuid.UUID
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&taken)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		logger.Error("RewardRepository:TakeStock", err)
		return false, err
	}

	return true, nil
}

func (r *RewardRepository) RestoreStock(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE rewards SET stock = stock + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		logger.Error("RewardRepository:RestoreStock", err)
		return err
	}

	return nil
}

func (r *RewardRepository) CreateRedemption(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID, pointsSpent int) (*rewardEntity.Redemption, error) {
	query := `
		INSERT INTO reward_redemptions (user_id, reward_id, points_spent)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, reward_id, points_spent, created_at`

	var redemption rewardEntity.Redemption
	err := r.DB.GetContext(ctx, &redemption, query, userID, rewardID, pointsSpent)
	if err != nil {
		logger.Error("RewardRepository:CreateRedemption", err)
		return nil, err
	}

	return &redemption, nil
}

func (r *RewardRepository) ListRedemptions(ctx context.Context, userID uuid.UUID) ([]rewardEntity.Redemption, error) {
	query := `
		SELECT id, user_id, reward_id, points_spent, created_at
		FROM reward_redemptions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	items := []rewardEntity.Redemption{}
	err := r.DB.SelectContext(ctx, &items, query, userID)
	if err != nil {
		logger.Error("RewardRepository:ListRedemptions", err)
		return nil, err
	}

	return items, nil
}
