// internal/services/rating_service.go
package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/models"
)

// RatingService owns the aggregate rating fields on Book. Nothing else writes
// averageRating or totalReviews.
type RatingService struct {
	db *gorm.DB

	mtx   sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{
		db:    db,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing aggregation for one book id. Entries
// are kept for the process lifetime; the map is bounded by the book count.
func (s *RatingService) lockFor(bookID uuid.UUID) *sync.Mutex {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	lock, exists := s.locks[bookID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[bookID] = lock
	}
	return lock
}

// Recompute recalculates averageRating and totalReviews for a book from the
// complete current review set and persists both. Recomputation is serialized
// per book id, so concurrent submissions cannot overwrite each other's
// aggregates: each caller recomputes after its own review is durable, and the
// last recompute in lock order has seen every earlier insert. The calculation
// is idempotent; rerunning it against an unchanged review set yields the same
// values.
func (s *RatingService) Recompute(bookID uuid.UUID) error {
	lock := s.lockFor(bookID)
	lock.Lock()
	defer lock.Unlock()

	var reviews []models.Review
	if err := s.db.Where("book_id = ?", bookID).Find(&reviews).Error; err != nil {
		return fmt.Errorf("failed to load reviews for book %s: %w", bookID, err)
	}

	var average float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		average = roundToTenth(float64(sum) / float64(len(reviews)))
	}

	result := s.db.Model(&models.Book{}).
		Where("id = ?", bookID).
		Updates(map[string]interface{}{
			"average_rating": average,
			"total_reviews":  len(reviews),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update rating for book %s: %w", bookID, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Book")
	}

	return nil
}

// RecomputeAll refreshes the aggregates of every book. Used after seeding.
func (s *RatingService) RecomputeAll() error {
	var bookIDs []uuid.UUID
	if err := s.db.Model(&models.Book{}).Pluck("id", &bookIDs).Error; err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	for _, id := range bookIDs {
		if err := s.Recompute(id); err != nil {
			return err
		}
	}
	return nil
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
