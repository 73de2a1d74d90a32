package service

import (
	"context"

	"campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/params"
	"campus-pulse/modules/news/dto"
	newsEntity "campus-pulse/modules/news/entity"
	"campus-pulse/modules/news/repository"

	"github.com/google/uuid"
)

// NewsService handles announcement business logic
type NewsService struct {
	repo repository.NewsRepositoryInterface
}

// NewsServiceInterface defines the service contract
type NewsServiceInterface interface {
	Create(ctx context.Context, authorID uuid.UUID, req *dto.CreateNewsRequest) (*newsEntity.News, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID, includeUnpublished bool) (*newsEntity.News, *errors.AppError)
	List(ctx context.Context, includeUnpublished bool, queryParams params.QueryParams) (*dto.PaginatedNewsResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*newsEntity.News, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewNewsService(repo repository.NewsRepositoryInterface) NewsServiceInterface {
	return &NewsService{repo: repo}
}

func (s *NewsService) Create(ctx context.Context, authorID uuid.UUID, req *dto.CreateNewsRequest) (*newsEntity.News, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}

	news, err := s.repo.Create(ctx, &newsEntity.News{
		Title:     req.Title,
		Body:      req.Body,
		AuthorID:  authorID,
		Published: req.Published,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create news", err)
	}

	return news, nil
}

func (s *NewsService) GetByID(ctx context.Context, id uuid.UUID, includeUnpublished bool) (*newsEntity.News, *errors.AppError) {
	news, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get news", err)
	}
	if news == nil || (!news.Published && !includeUnpublished) {
		return nil, errors.NewAppError(errors.ErrNotFound, "News not found", nil)
	}

	return news, nil
}

func (s *NewsService) List(ctx context.Context, includeUnpublished bool, queryParams params.QueryParams) (*dto.PaginatedNewsResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, !includeUnpublished, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list news", err)
	}

	return toPaginatedNews(page), nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*newsEntity.News, *errors.AppError) {
	news, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get news", err)
	}
	if news == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "News not found", nil)
	}

	if req.Title != "" {
		news.Title = req.Title
	}
	if req.Body != "" {
		news.Body = req.Body
	}
	if req.Published != nil {
		news.Published = *req.Published
	}

	if err = s.repo.Update(ctx, news); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update news", err)
	}

	return news, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	news, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get news", err)
	}
	if news == nil {
		return errors.NewAppError(errors.ErrNotFound, "News not found", nil)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete news", err)
	}

	return nil
}

func toPaginatedNews(page *entity.Pagination[newsEntity.News]) *dto.PaginatedNewsResponse {
	return &dto.PaginatedNewsResponse{
		Items:      page.Items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
