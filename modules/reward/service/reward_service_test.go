package service

import (
	"context"
	"testing"
	"time"

	coreEntity "campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/params"
	"campus-pulse/modules/reward/dto"
	"campus-pulse/modules/reward/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRewardRepo struct {
	rewards     map[uuid.UUID]*entity.Reward
	redemptions []entity.Redemption
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{rewards: make(map[uuid.UUID]*entity.Reward)}
}

func (f *fakeRewardRepo) Create(_ context.Context, reward *entity.Reward) (*entity.Reward, error) {
	r := *reward
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.rewards[r.ID] = &r
	copied := r
	return &copied, nil
}

func (f *fakeRewardRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Reward, error) {
	r, ok := f.rewards[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRewardRepo) List(_ context.Context, activeOnly bool, queryParams params.QueryParams) (*coreEntity.Pagination[entity.Reward], error) {
	items := []entity.Reward{}
	for _, r := range f.rewards {
		if activeOnly && !r.Active {
			continue
		}
		items = append(items, *r)
	}
	return &coreEntity.Pagination[entity.Reward]{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeRewardRepo) Update(_ context.Context, reward *entity.Reward) error {
	copied := *reward
	f.rewards[reward.ID] = &copied
	return nil
}

func (f *fakeRewardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rewards, id)
	return nil
}

func (f *fakeRewardRepo) TakeStock(_ context.Context, id uuid.UUID) (bool, error) {
	r, ok := f.rewards[id]
	if !ok || !r.Active || r.Stock < 1 {
		return false, nil
	}
	r.Stock--
	return true, nil
}

func (f *fakeRewardRepo) RestoreStock(_ context.Context, id uuid.UUID) error {
	if r, ok := f.rewards[id]; ok {
		r.Stock++
	}
	return nil
}

func (f *fakeRewardRepo) CreateRedemption(_ context.Context, userID uuid.UUID, rewardID uuid.UUID, pointsSpent int) (*entity.Redemption, error) {
	redemption := entity.Redemption{
		ID:          uuid.New(),
		UserID:      userID,
		RewardID:    rewardID,
		PointsSpent: pointsSpent,
		CreatedAt:   time.Now(),
	}
	f.redemptions = append(f.redemptions, redemption)
	return &redemption, nil
}

func (f *fakeRewardRepo) ListRedemptions(_ context.Context, userID uuid.UUID) ([]entity.Redemption, error) {
	items := []entity.Redemption{}
	for _, r := range f.redemptions {
		if r.UserID == userID {
			items = append(items, r)
		}
	}
	return items, nil
}

type fakeSpender struct {
	balances map[uuid.UUID]int
}

func (f *fakeSpender) SpendPoints(_ context.Context, userID uuid.UUID, cost int) *errors.AppError {
	if f.balances[userID] < cost {
		return errors.NewAppError(errors.ErrPreconditionFailed, "Not enough points", nil)
	}
	f.balances[userID] -= cost
	return nil
}

type fakeRedemptionNotifier struct {
	points []int
}

func (f *fakeRedemptionNotifier) NotifyPoints(_ context.Context, _ uuid.UUID, _ uuid.UUID, points int, _ string) error {
	f.points = append(f.points, points)
	return nil
}

func newTestRewardService(t *testing.T) (RewardServiceInterface, *fakeRewardRepo, *fakeSpender, *fakeRedemptionNotifier) {
	t.Helper()
	repo := newFakeRewardRepo()
	spender := &fakeSpender{balances: make(map[uuid.UUID]int)}
	notifier := &fakeRedemptionNotifier{}
	return NewRewardService(repo, spender, notifier), repo, spender, notifier
}

func createReward(t *testing.T, svc RewardServiceInterface, cost int, stock int) *entity.Reward {
	t.Helper()
	reward, appErr := svc.Create(context.Background(), &dto.CreateRewardRequest{
		Title: "Coffee Voucher",
		Cost:  cost,
		Stock: stock,
	})
	require.Nil(t, appErr)
	return reward
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("debits points, takes stock and records the purchase", func(t *testing.T) {
		svc, repo, spender, notifier := newTestRewardService(t)
		reward := createReward(t, svc, 50, 3)
		userID := uuid.New()
		spender.balances[userID] = 120

		got, appErr := svc.Redeem(ctx, userID, reward.ID)
		require.Nil(t, appErr)
		assert.Equal(t, 50, got.PointsSpent)
		assert.Equal(t, "Coffee Voucher", got.RewardTitle)
		assert.Equal(t, 70, spender.balances[userID])
		assert.Equal(t, 2, repo.rewards[reward.ID].Stock)
		assert.Equal(t, []int{-50}, notifier.points)
	})

	t.Run("insufficient points restores the reserved unit", func(t *testing.T) {
		svc, repo, spender, _ := newTestRewardService(t)
		reward := createReward(t, svc, 50, 1)
		userID := uuid.New()
		spender.balances[userID] = 10

		_, appErr := svc.Redeem(ctx, userID, reward.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Equal(t, 1, repo.rewards[reward.ID].Stock)
	})

	t.Run("out of stock", func(t *testing.T) {
		svc, _, spender, _ := newTestRewardService(t)
		reward := createReward(t, svc, 50, 1)
		rich := uuid.New()
		richer := uuid.New()
		spender.balances[rich] = 100
		spender.balances[richer] = 100

		_, appErr := svc.Redeem(ctx, rich, reward.ID)
		require.Nil(t, appErr)

		_, appErr = svc.Redeem(ctx, richer, reward.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
	})

	t.Run("inactive reward", func(t *testing.T) {
		svc, repo, spender, _ := newTestRewardService(t)
		reward := createReward(t, svc, 50, 5)
		repo.rewards[reward.ID].Active = false
		userID := uuid.New()
		spender.balances[userID] = 100

		_, appErr := svc.Redeem(ctx, userID, reward.ID)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
	})

	t.Run("unknown reward", func(t *testing.T) {
		svc, _, _, _ := newTestRewardService(t)

		_, appErr := svc.Redeem(ctx, uuid.New(), uuid.New())
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestRedemptionHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, spender, _ := newTestRewardService(t)
	reward := createReward(t, svc, 30, 10)
	userID := uuid.New()
	spender.balances[userID] = 100

	_, appErr := svc.Redeem(ctx, userID, reward.ID)
	require.Nil(t, appErr)
	_, appErr = svc.Redeem(ctx, userID, reward.ID)
	require.Nil(t, appErr)

	history, appErr := svc.ListMyRedemptions(ctx, userID)
	require.Nil(t, appErr)
	assert.Len(t, history, 2)
}
