// internal/handlers/book.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookreview/bookreview-backend/internal/services"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

const defaultBookPageSize = 12

type BookHandler struct {
	bookService *services.BookService
}

func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// GET /books
func (h *BookHandler) GetBooks(c *gin.Context) {
	params := utils.GetPaginationParams(c, defaultBookPageSize)

	searchParams := services.BookSearchParams{
		PaginationParams: params,
		Search:           c.Query("search"),
		Genre:            c.Query("genre"),
		Featured:         c.Query("featured") == "true",
	}

	books, total, err := h.bookService.ListBooks(searchParams)
	if err != nil {
		respondServiceError(c, err, "list_books", "Failed to fetch books")
		return
	}

	utils.PaginatedResponse(c, books, utils.NewPagination(params, total))
}

// POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req services.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	book, err := h.bookService.CreateBook(&req)
	if err != nil {
		respondServiceError(c, err, "create_book", "Failed to create book")
		return
	}

	utils.SuccessResponse(c, book)
}

// GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID")
		return
	}

	book, err := h.bookService.GetBook(id)
	if err != nil {
		respondServiceError(c, err, "get_book", "Failed to fetch book")
		return
	}

	utils.SuccessResponse(c, book)
}
