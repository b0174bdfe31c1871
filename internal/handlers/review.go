// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookreview/bookreview-backend/internal/services"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

const defaultReviewPageSize = 10

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /reviews?bookId=
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	bookID, err := uuid.Parse(c.Query("bookId"))
	if err != nil {
		utils.BadRequestResponse(c, "Valid book ID is required")
		return
	}

	params := utils.GetPaginationParams(c, defaultReviewPageSize)

	reviews, total, err := h.reviewService.ListReviews(bookID, params)
	if err != nil {
		respondServiceError(c, err, "list_reviews", "Failed to fetch reviews")
		return
	}

	utils.PaginatedResponse(c, reviews, utils.NewPagination(params, total))
}

// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	review, err := h.reviewService.CreateReview(&req)
	if err != nil {
		respondServiceError(c, err, "create_review", "Failed to create review")
		return
	}

	utils.SuccessResponse(c, review)
}
