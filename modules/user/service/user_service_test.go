package service

import (
	"context"
	"testing"

	"campus-pulse/core/constants"
	"campus-pulse/core/errors"
	"campus-pulse/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*entity.User
	history map[uuid.UUID][]entity.PointHistory
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*entity.User),
		history: make(map[uuid.UUID][]entity.PointHistory),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	u := *user
	u.ID = uuid.New()
	f.users[u.ID] = &u
	copied := u
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpsertGoogleUser(_ context.Context, email string, username string, fullName string) (*entity.User, error) {
	if u, _ := f.GetByEmail(context.Background(), email); u != nil {
		return u, nil
	}
	return f.Create(context.Background(), &entity.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		Role:         constants.RoleUser,
		SignupMethod: constants.SignupMethodGoogle,
	})
}

func (f *fakeUserRepo) AwardPoints(_ context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) error {
	if u, ok := f.users[userID]; ok {
		u.Points += points
	}
	f.history[userID] = append(f.history[userID], entity.PointHistory{
		UserID:     userID,
		EventID:    eventID,
		EventTitle: eventTitle,
		Points:     points,
	})
	return nil
}

func (f *fakeUserRepo) SpendPoints(_ context.Context, userID uuid.UUID, cost int) (bool, error) {
	u, ok := f.users[userID]
	if !ok || u.Points < cost {
		return false, nil
	}
	u.Points -= cost
	return true, nil
}

func (f *fakeUserRepo) GetPointHistory(_ context.Context, userID uuid.UUID) ([]entity.PointHistory, error) {
	return f.history[userID], nil
}

func (f *fakeUserRepo) GetLeaderboard(_ context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	entries := []entity.LeaderboardEntry{}
	for _, u := range f.users {
		entries = append(entries, entity.LeaderboardEntry{UserID: u.ID, Username: u.Username, Points: u.Points})
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, points int) *entity.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &entity.User{
		Email:    "sam@example.edu",
		Username: "sam",
		Points:   points,
		Role:     constants.RoleUser,
	})
	require.NoError(t, err)
	repo.users[u.ID].Points = points
	return u
}

func TestAwardPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the given amount", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		u := seedUser(t, repo, 0)

		require.Nil(t, svc.AwardPoints(ctx, u.ID, uuid.New(), "Career Fair", 25))
		assert.Equal(t, 25, repo.users[u.ID].Points)
	})

	t.Run("zero falls back to the default survey award", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		u := seedUser(t, repo, 0)

		require.Nil(t, svc.AwardPoints(ctx, u.ID, uuid.New(), "Career Fair", 0))
		assert.Equal(t, constants.DefaultSurveyPoints, repo.users[u.ID].Points)
	})
}

func TestSpendPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("debits when the balance covers it", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		u := seedUser(t, repo, 100)

		require.Nil(t, svc.SpendPoints(ctx, u.ID, 60))
		assert.Equal(t, 40, repo.users[u.ID].Points)
	})

	t.Run("refuses to overdraw", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		u := seedUser(t, repo, 30)

		appErr := svc.SpendPoints(ctx, u.ID, 60)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Equal(t, 30, repo.users[u.ID].Points)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	t.Run("unknown user", func(t *testing.T) {
		_, appErr := svc.GetProfile(ctx, uuid.New())
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})

	t.Run("known user", func(t *testing.T) {
		u := seedUser(t, repo, 55)
		got, appErr := svc.GetProfile(ctx, u.ID)
		require.Nil(t, appErr)
		assert.Equal(t, "sam", got.Username)
		assert.Equal(t, 55, got.Points)
	})
}
