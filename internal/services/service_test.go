// internal/services/service_test.go
package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookreview/bookreview-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Book{}, &models.Review{}, &models.User{}))
	return db
}

func createTestBook(t *testing.T, db *gorm.DB, title, author, genre string, featured bool, createdAt time.Time) *models.Book {
	t.Helper()

	book := &models.Book{
		Title:       title,
		Author:      author,
		Description: "test description",
		CoverImage:  models.DefaultCoverImage,
		Genre:       genre,
		Featured:    featured,
	}
	book.CreatedAt = createdAt
	require.NoError(t, db.Create(book).Error)
	return book
}

func createTestReview(t *testing.T, db *gorm.DB, book *models.Book, rating int) *models.Review {
	t.Helper()

	review := &models.Review{
		BookID:   book.ID,
		UserID:   "reader-1",
		UserName: "Reader",
		Rating:   rating,
		Title:    "test review",
		Content:  "test content",
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
