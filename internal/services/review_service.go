// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/models"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

type ReviewService struct {
	db            *gorm.DB
	ratingService *RatingService
}

type CreateReviewRequest struct {
	BookID   string `json:"bookId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	Rating   int    `json:"rating" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func NewReviewService(db *gorm.DB, ratingService *RatingService) *ReviewService {
	return &ReviewService{
		db:            db,
		ratingService: ratingService,
	}
}

// CreateReview validates and persists a new review, then synchronously
// recomputes the book's aggregate rating. Validation runs fail-fast in a
// fixed order and no write happens before it passes.
func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewValidationError("Missing required fields")
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return nil, NewValidationError("Invalid book ID")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewValidationError("Rating must be between 1 and 5")
	}

	var book models.Book
	if err := s.db.First(&book, "id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Book")
		}
		return nil, fmt.Errorf("failed to fetch book %s: %w", bookID, err)
	}

	review := &models.Review{
		BookID:   bookID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Title:    req.Title,
		Content:  req.Content,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// The review is durable at this point, so the aggregator sees it in its
	// read. A failed recompute must not fail the submission; it is logged
	// for operational visibility instead.
	if err := s.ratingService.Recompute(bookID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"operation": "recompute_rating",
			"bookId":    bookID,
		}).Error("rating aggregation failed after review insert")
	}

	return review, nil
}

// ListReviews returns one page of a book's reviews, newest first, plus the
// full count.
func (s *ReviewService) ListReviews(bookID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{}).Where("book_id = ?", bookID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.Review
	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}
