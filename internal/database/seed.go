// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/models"
)

// SeedSampleData loads the sample catalog, a couple of readers, and two
// reviews for The Great Gatsby. It is a no-op when books already exist.
// Aggregate rating fields are left zeroed here; the seed command recomputes
// them afterwards so seeded books are consistent with their reviews.
func SeedSampleData(db *gorm.DB) error {
	var bookCount int64
	if err := db.Model(&models.Book{}).Count(&bookCount).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if bookCount > 0 {
		logrus.Info("Sample data already present, skipping seed")
		return nil
	}

	books := []models.Book{
		{
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			Description:   "A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Fiction",
			PublishedDate: "1925-04-10",
			ISBN:          "978-0-7432-7356-5",
			Featured:      true,
		},
		{
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Description:   "A gripping tale of racial injustice and childhood innocence in the American South.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Fiction",
			PublishedDate: "1960-07-11",
			ISBN:          "978-0-06-112008-4",
			Featured:      true,
		},
		{
			Title:         "1984",
			Author:        "George Orwell",
			Description:   "A dystopian social science fiction novel about totalitarian control and surveillance.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Science Fiction",
			PublishedDate: "1949-06-08",
			ISBN:          "978-0-452-28423-4",
			Featured:      true,
		},
		{
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			Description:   "A romantic novel that critiques the British landed gentry at the end of the 18th century.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Romance",
			PublishedDate: "1813-01-28",
			ISBN:          "978-0-14-143951-8",
		},
		{
			Title:         "The Catcher in the Rye",
			Author:        "J.D. Salinger",
			Description:   "A controversial novel about teenage rebellion and alienation in post-war America.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Fiction",
			PublishedDate: "1951-07-16",
			ISBN:          "978-0-316-76948-0",
		},
		{
			Title:         "Dune",
			Author:        "Frank Herbert",
			Description:   "An epic science fiction novel set in a distant future amidst a feudal interstellar society.",
			CoverImage:    models.DefaultCoverImage,
			Genre:         "Science Fiction",
			PublishedDate: "1965-08-01",
			ISBN:          "978-0-441-17271-9",
			Featured:      true,
		},
	}

	if err := db.Create(&books).Error; err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}

	users := []models.User{
		{
			Name:       "BookLover123",
			Email:      "booklover123@example.com",
			Avatar:     models.DefaultCoverImage,
			Bio:        "Always chasing the next great read.",
			JoinedDate: time.Now(),
		},
		{
			Name:       "LiteraryFan",
			Email:      "literaryfan@example.com",
			Avatar:     models.DefaultCoverImage,
			Bio:        "Classics, mostly. Reviews when the mood strikes.",
			JoinedDate: time.Now(),
		},
	}

	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	gatsby := books[0]
	reviews := []models.Review{
		{
			BookID:   gatsby.ID,
			UserID:   users[0].ID.String(),
			UserName: users[0].Name,
			Rating:   5,
			Title:    "A Timeless Classic",
			Content:  "Fitzgerald's masterpiece continues to resonate with readers today. The symbolism and prose are absolutely beautiful.",
		},
		{
			BookID:   gatsby.ID,
			UserID:   users[1].ID.String(),
			UserName: users[1].Name,
			Rating:   4,
			Title:    "Great Character Development",
			Content:  "The characters are complex and well-developed. Gatsby himself is both admirable and tragic.",
		},
	}

	if err := db.Create(&reviews).Error; err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"books":   len(books),
		"users":   len(users),
		"reviews": len(reviews),
	}).Info("Sample data seeded")
	return nil
}
