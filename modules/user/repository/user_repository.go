package repository

import (
	"context"
	"database/sql"

	"campus-pulse/core/database"
	"campus-pulse/core/logger"
	"campus-pulse/modules/user/entity"

	"github.com/google/uuid"
)

// UserRepository handles user and points-ledger database operations
type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpsertGoogleUser(ctx context.Context, email string, username string, fullName string) (*entity.User, error)

	// Points ledger
	AwardPoints(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) error
	SpendPoints(ctx context.Context, userID uuid.UUID, cost int) (bool, error)
	GetPointHistory(ctx context.Context, userID uuid.UUID) ([]entity.PointHistory, error)
	GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, username, full_name, password_hash, role, signup_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, username, full_name, password_hash, role, signup_method, points, created_at, updated_at
	`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Email, user.Username, user.FullName, user.PasswordHash, user.Role, user.SignupMethod)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, username, full_name, password_hash, role, signup_method, points, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, username, full_name, password_hash, role, signup_method, points, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", err)
		return nil, err
	}

	return &user, nil
}

// UpsertGoogleUser creates the account on first Google sign-in and returns
// the existing one afterwards. Role is never touched on conflict.
func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email string, username string, fullName string) (*entity.User, error) {
	query := `
		INSERT INTO users (email, username, full_name, role, signup_method)
		VALUES ($1, $2, $3, 'user', 'google')
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id, email, username, full_name, password_hash, role, signup_method, points, created_at, updated_at
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email, username, fullName)
	if err != nil {
		logger.Error("UserRepository:UpsertGoogleUser", err)
		return nil, err
	}

	return &user, nil
}

// AwardPoints increments the user's total and appends the history entry in
// one transaction, so the ledger and the total cannot drift apart.
func (r *UserRepository) AwardPoints(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, eventTitle string, points int) error {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("UserRepository:AwardPoints:Begin", err)
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET points = points + $2, updated_at = NOW() WHERE id = $1`,
		userID, points)
	if err != nil {
		logger.Error("UserRepository:AwardPoints:Update", err)
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO point_history (user_id, event_id, event_title, points) VALUES ($1, $2, $3, $4)`,
		userID, eventID, eventTitle, points)
	if err != nil {
		logger.Error("UserRepository:AwardPoints:Insert", err)
		return err
	}

	return tx.Commit()
}

// SpendPoints deducts cost only when the balance covers it (conditional
// update, no read-then-write race). Returns false when the balance was short.
func (r *UserRepository) SpendPoints(ctx context.Context, userID uuid.UUID, cost int) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx,
		`UPDATE users SET points = points - :cost, updated_at = NOW() WHERE id = :id AND points >= :cost`,
		map[string]any{"id": userID, "cost": cost})
	if err != nil {
		logger.Error("UserRepository:SpendPoints", err)
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *UserRepository) GetPointHistory(ctx context.Context, userID uuid.UUID) ([]entity.PointHistory, error) {
	query := `
		SELECT id, user_id, event_id, event_title, points, created_at
		FROM point_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var history []entity.PointHistory
	err := r.DB.SelectContext(ctx, &history, query, userID)
	if err != nil {
		logger.Error("UserRepository:GetPointHistory", err)
		return nil, err
	}

	return history, nil
}

func (r *UserRepository) GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	query := `
		SELECT id AS user_id, username, points
		FROM users
		ORDER BY points DESC, username ASC
		LIMIT $1
	`

	var entries []entity.LeaderboardEntry
	err := r.DB.SelectContext(ctx, &entries, query, limit)
	if err != nil {
		logger.Error("UserRepository:GetLeaderboard", err)
		return nil, err
	}

	return entries, nil
}
