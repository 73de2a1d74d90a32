package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// QueryParams carries standard pagination query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams reads ?page= and ?limit= from the request, clamping to sane bounds.
func NewQueryParams(ctx echo.Context) *QueryParams {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page < 1 {
		page = DefaultPageNumber
	}

	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return &QueryParams{
		PageNumber: page,
		PageSize:   limit,
	}
}
