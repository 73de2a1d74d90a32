package dto

import (
	"campus-pulse/modules/news/entity"
)

// ===================== Request DTOs =====================

type CreateNewsRequest struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published *bool  `json:"published"`
}

// ===================== Response DTOs =====================

type PaginatedNewsResponse struct {
	Items      []entity.News `json:"items"`
	TotalItems int           `json:"total_items"`
	PageNumber int           `json:"page_number"`
	PageSize   int           `json:"page_size"`
}
