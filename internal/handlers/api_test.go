// internal/handlers/api_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookreview/bookreview-backend/internal/models"
	"github.com/bookreview/bookreview-backend/internal/services"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

type apiEnvelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Error      string            `json:"error"`
	Pagination *utils.Pagination `json:"pagination"`
}

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(&models.Book{}, &models.Review{}, &models.User{}))
	s.db = db

	ratingService := services.NewRatingService(db)
	bookHandler := NewBookHandler(services.NewBookService(db))
	reviewHandler := NewReviewHandler(services.NewReviewService(db, ratingService))
	userHandler := NewUserHandler(services.NewUserService(db))

	router := gin.New()
	router.GET("/books", bookHandler.GetBooks)
	router.POST("/books", bookHandler.CreateBook)
	router.GET("/books/:id", bookHandler.GetBook)
	router.GET("/reviews", reviewHandler.GetReviews)
	router.POST("/reviews", reviewHandler.CreateReview)
	router.GET("/users/:id", userHandler.GetUser)
	router.PUT("/users/:id", userHandler.UpdateUser)
	s.router = router
}

func (s *APITestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var envelope apiEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func (s *APITestSuite) seedBook(title, author, genre string, featured bool, createdAt time.Time) *models.Book {
	book := &models.Book{
		Title:       title,
		Author:      author,
		Description: "test description",
		CoverImage:  models.DefaultCoverImage,
		Genre:       genre,
		Featured:    featured,
	}
	book.CreatedAt = createdAt
	s.Require().NoError(s.db.Create(book).Error)
	return book
}

func (s *APITestSuite) seedUser() *models.User {
	user := &models.User{
		Name:       "BookLover123",
		Email:      "booklover123@example.com",
		Avatar:     "/avatars/booklover.png",
		Bio:        "Always chasing the next great read.",
		JoinedDate: time.Now(),
	}
	s.Require().NoError(s.db.Create(user).Error)
	return user
}

func (s *APITestSuite) TestListBooksEnvelope() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.seedBook(fmt.Sprintf("Book %d", i), "Author", "Fiction", false, base.Add(time.Duration(i)*time.Hour))
	}

	w, envelope := s.request(http.MethodGet, "/books?page=1&limit=2", nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)
	s.Require().NotNil(envelope.Pagination)
	s.Equal(1, envelope.Pagination.Page)
	s.Equal(2, envelope.Pagination.Limit)
	s.EqualValues(3, envelope.Pagination.Total)
	s.Equal(2, envelope.Pagination.TotalPages)

	var books []models.Book
	s.Require().NoError(json.Unmarshal(envelope.Data, &books))
	s.Len(books, 2)
	s.Equal("Book 2", books[0].Title)
}

func (s *APITestSuite) TestListBooksPastTheEnd() {
	s.seedBook("Dune", "Frank Herbert", "Science Fiction", true, time.Now())

	w, envelope := s.request(http.MethodGet, "/books?page=100", nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)
	s.EqualValues(1, envelope.Pagination.Total)
	s.Equal(1, envelope.Pagination.TotalPages)

	var books []models.Book
	s.Require().NoError(json.Unmarshal(envelope.Data, &books))
	s.Empty(books)
}

func (s *APITestSuite) TestCreateAndFetchBook() {
	w, envelope := s.request(http.MethodPost, "/books", map[string]interface{}{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"description": "An epic science fiction novel.",
		"genre":       "Science Fiction",
	})
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)

	var created models.Book
	s.Require().NoError(json.Unmarshal(envelope.Data, &created))
	s.NotEqual(uuid.Nil, created.ID)
	s.False(created.Featured)
	s.Zero(created.TotalReviews)

	w, envelope = s.request(http.MethodGet, "/books/"+created.ID.String(), nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)

	w, envelope = s.request(http.MethodGet, "/books/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid book ID", envelope.Error)

	w, envelope = s.request(http.MethodGet, "/books/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.False(envelope.Success)
}

func (s *APITestSuite) TestCreateBookMissingFields() {
	w, envelope := s.request(http.MethodPost, "/books", map[string]interface{}{
		"title": "Dune",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(envelope.Success)
	s.Equal("Missing required fields", envelope.Error)
}

func (s *APITestSuite) TestSubmitReviewFlow() {
	book := s.seedBook("The Great Gatsby", "F. Scott Fitzgerald", "Fiction", true, time.Now())

	w, envelope := s.request(http.MethodPost, "/reviews", map[string]interface{}{
		"bookId":   book.ID.String(),
		"userId":   "reader-1",
		"userName": "BookLover123",
		"rating":   5,
		"title":    "A Timeless Classic",
		"content":  "Couldn't put it down.",
	})
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)

	_, envelope = s.request(http.MethodGet, "/books/"+book.ID.String(), nil)
	var got models.Book
	s.Require().NoError(json.Unmarshal(envelope.Data, &got))
	s.InDelta(5.0, got.AverageRating, 0.001)
	s.EqualValues(1, got.TotalReviews)

	w, _ = s.request(http.MethodPost, "/reviews", map[string]interface{}{
		"bookId":   book.ID.String(),
		"userId":   "reader-2",
		"userName": "LiteraryFan",
		"rating":   4,
		"title":    "Great Character Development",
		"content":  "Complex and well-developed characters.",
	})
	s.Equal(http.StatusOK, w.Code)

	_, envelope = s.request(http.MethodGet, "/books/"+book.ID.String(), nil)
	s.Require().NoError(json.Unmarshal(envelope.Data, &got))
	s.InDelta(4.5, got.AverageRating, 0.001)
	s.EqualValues(2, got.TotalReviews)
}

func (s *APITestSuite) TestSubmitReviewValidation() {
	book := s.seedBook("The Great Gatsby", "F. Scott Fitzgerald", "Fiction", true, time.Now())

	review := func(overrides map[string]interface{}) map[string]interface{} {
		body := map[string]interface{}{
			"bookId":   book.ID.String(),
			"userId":   "reader-1",
			"userName": "BookLover123",
			"rating":   5,
			"title":    "A Timeless Classic",
			"content":  "Couldn't put it down.",
		}
		for k, v := range overrides {
			body[k] = v
		}
		return body
	}

	w, envelope := s.request(http.MethodPost, "/reviews", review(map[string]interface{}{"rating": 6}))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Rating must be between 1 and 5", envelope.Error)

	w, envelope = s.request(http.MethodPost, "/reviews", review(map[string]interface{}{"rating": 0}))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Missing required fields", envelope.Error)

	w, envelope = s.request(http.MethodPost, "/reviews", review(map[string]interface{}{"bookId": "not-a-uuid"}))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid book ID", envelope.Error)

	w, envelope = s.request(http.MethodPost, "/reviews", review(map[string]interface{}{"content": ""}))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Missing required fields", envelope.Error)

	w, envelope = s.request(http.MethodPost, "/reviews", review(map[string]interface{}{"bookId": uuid.NewString()}))
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Book not found", envelope.Error)

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Count(&count).Error)
	s.Zero(count)
}

func (s *APITestSuite) TestListReviews() {
	w, envelope := s.request(http.MethodGet, "/reviews", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Valid book ID is required", envelope.Error)

	book := s.seedBook("The Great Gatsby", "F. Scott Fitzgerald", "Fiction", true, time.Now())
	for i := 0; i < 3; i++ {
		review := &models.Review{
			BookID:   book.ID,
			UserID:   fmt.Sprintf("reader-%d", i),
			UserName: "Reader",
			Rating:   4,
			Title:    "Review",
			Content:  "Content",
		}
		s.Require().NoError(s.db.Create(review).Error)
	}

	w, envelope = s.request(http.MethodGet, "/reviews?bookId="+book.ID.String(), nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)
	s.Require().NotNil(envelope.Pagination)
	s.EqualValues(3, envelope.Pagination.Total)
	s.Equal(10, envelope.Pagination.Limit)
}

func (s *APITestSuite) TestUserEndpoints() {
	user := s.seedUser()

	w, envelope := s.request(http.MethodGet, "/users/"+user.ID.String(), nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(envelope.Success)

	w, envelope = s.request(http.MethodGet, "/users/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid user ID", envelope.Error)

	w, envelope = s.request(http.MethodGet, "/users/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("User not found", envelope.Error)

	// clearing the bio is a real update
	w, envelope = s.request(http.MethodPut, "/users/"+user.ID.String(), map[string]interface{}{
		"bio": "",
	})
	s.Equal(http.StatusOK, w.Code)

	var got models.User
	s.Require().NoError(json.Unmarshal(envelope.Data, &got))
	s.Empty(got.Bio)
	s.Equal(user.Name, got.Name)

	// omitting the bio leaves it unchanged
	w, envelope = s.request(http.MethodPut, "/users/"+user.ID.String(), map[string]interface{}{
		"name": "BookLover456",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(envelope.Data, &got))
	s.Equal("BookLover456", got.Name)
	s.Empty(got.Bio)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
