// internal/services/book_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/models"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

type BookService struct {
	db *gorm.DB
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Description   string `json:"description" validate:"required"`
	CoverImage    string `json:"coverImage"`
	Genre         string `json:"genre" validate:"required"`
	PublishedDate string `json:"publishedDate"`
	ISBN          string `json:"isbn"`
}

type BookSearchParams struct {
	utils.PaginationParams
	Search   string
	Genre    string
	Featured bool
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

func (s *BookService) CreateBook(req *CreateBookRequest) (*models.Book, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewValidationError("Missing required fields")
	}

	coverImage := req.CoverImage
	if coverImage == "" {
		coverImage = models.DefaultCoverImage
	}

	book := &models.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		CoverImage:    coverImage,
		Genre:         req.Genre,
		PublishedDate: req.PublishedDate,
		ISBN:          req.ISBN,
		AverageRating: 0,
		TotalReviews:  0,
		Featured:      false,
	}

	if err := s.db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (s *BookService) GetBook(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Book")
		}
		return nil, fmt.Errorf("failed to fetch book %s: %w", id, err)
	}
	return &book, nil
}

// ListBooks returns one page of books matching the filters plus the full
// count under the same predicate. Absent filters impose no restriction.
// Count and page fetch are computed independently (no transaction); a write
// landing between the two is tolerated.
func (s *BookService) ListBooks(params BookSearchParams) ([]models.Book, int64, error) {
	filtered := func() *gorm.DB {
		query := s.db.Model(&models.Book{})
		if params.Search != "" {
			term := "%" + strings.ToLower(params.Search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", term, term)
		}
		if params.Genre != "" {
			query = query.Where("genre = ?", params.Genre)
		}
		if params.Featured {
			query = query.Where("featured = ?", true)
		}
		return query
	}

	var (
		total int64
		books []models.Book
	)

	var grp errgroup.Group
	grp.Go(func() error {
		if err := filtered().Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count books: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		query := filtered().Order("created_at DESC")
		query = utils.ApplyPagination(query, params.PaginationParams)
		if err := query.Find(&books).Error; err != nil {
			return fmt.Errorf("failed to fetch books: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}
