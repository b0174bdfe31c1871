// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxPageSize = 100

type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// GetPaginationParams reads page/limit from the query string. Malformed or
// out-of-range values fall back to page 1 and the caller's default limit
// rather than erroring.
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultLimit
	}

	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset(params.Offset()).Limit(params.Limit)
}

// NewPagination builds the response metadata for a total computed under the
// same filter as the page fetch. A page past the end yields an empty data set
// with this metadata intact, not an error.
func NewPagination(params PaginationParams, total int64) Pagination {
	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}
}
