// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/config"
	"github.com/bookreview/bookreview-backend/internal/handlers"
	"github.com/bookreview/bookreview-backend/internal/middleware"
	"github.com/bookreview/bookreview-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	ratingService := services.NewRatingService(db)
	bookService := services.NewBookService(db)
	reviewService := services.NewReviewService(db, ratingService)
	userService := services.NewUserService(db)

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(bookService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	books := r.Group("/books")
	{
		books.GET("", bookHandler.GetBooks)
		books.POST("", middleware.SubmitRateLimit(), bookHandler.CreateBook)
		books.GET("/:id", bookHandler.GetBook)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewHandler.GetReviews)
		reviews.POST("", middleware.SubmitRateLimit(), reviewHandler.CreateReview)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
	}

	return r
}
