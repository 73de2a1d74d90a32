package repository

import (
	"context"
	"database/sql"

	"campus-pulse/core/database"
	"campus-pulse/core/entity"
	"campus-pulse/core/logger"
	"campus-pulse/core/params"
	newsEntity "campus-pulse/modules/news/entity"

	"github.com/google/uuid"
)

const newsColumns = `id, title, body, author_id, published, created_at, updated_at`

// NewsRepository handles news database operations
type NewsRepository struct {
	DB database.Database
}

func NewNewsRepository(db database.Database) *NewsRepository {
	return &NewsRepository{DB: db}
}

// NewsRepositoryInterface defines the repository contract
type NewsRepositoryInterface interface {
	Create(ctx context.Context, news *newsEntity.News) (*newsEntity.News, error)
	GetByID(ctx context.Context, id uuid.UUID) (*newsEntity.News, error)
	List(ctx context.Context, publishedOnly bool, queryParams params.QueryParams) (*entity.Pagination[newsEntity.News], error)
	Update(ctx context.Context, news *newsEntity.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *NewsRepository) Create(ctx context.Context, news *newsEntity.News) (*newsEntity.News, error) {
	query := `
		INSERT INTO news (title, body, author_id, published)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + newsColumns

	var created newsEntity.News
	err := r.DB.GetContext(ctx, &created, query, news.Title, news.Body, news.AuthorID, news.Published)
	if err != nil {
		logger.Error("NewsRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*newsEntity.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`

	var news newsEntity.News
	err := r.DB.GetContext(ctx, &news, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("NewsRepository:GetByID", err)
		return nil, err
	}

	return &news, nil
}

func (r *NewsRepository) List(ctx context.Context, publishedOnly bool, queryParams params.QueryParams) (*entity.Pagination[newsEntity.News], error) {
	where := ""
	if publishedOnly {
		where = "WHERE published = TRUE"
	}

	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM news `+where)
	if err != nil {
		logger.Error("NewsRepository:List:Count", err)
		return nil, err
	}

	query := `SELECT ` + newsColumns + ` FROM news ` + where + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	items := []newsEntity.News{}
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	err = r.DB.SelectContext(ctx, &items, query, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("NewsRepository:List", err)
		return nil, err
	}

	return &entity.Pagination[newsEntity.News]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *NewsRepository) Update(ctx context.Context, news *newsEntity.News) error {
	query := `
		UPDATE news
		SET title = $2, body = $3, published = $4, updated_at = NOW()
		WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, news.ID, news.Title, news.Body, news.Published)
	if err != nil {
		logger.Error("NewsRepository:Update", err)
		return err
	}

	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		logger.Error("NewsRepository:Delete", err)
		return err
	}

	return nil
}
