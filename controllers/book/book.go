package bookController

import (
	"errors"

	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models/book"

	"github.com/gofiber/fiber/v2"
)

// GetAllBooks lists books with pagination and optional search
func GetAllBooks(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBookList").(*struct {
		Page   *int    `json:"page"`
		Limit  *int    `json:"limit"`
		Search *string `json:"search"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	offset := (*reqData.Page - 1) * (*reqData.Limit)

	query := db.Model(&book.Book{}).Where("is_deleted = ?", false)
	if reqData.Search != nil && *reqData.Search != "" {
		search := "%" + *reqData.Search + "%"
		query = query.Where("title ILIKE ? OR author ILIKE ?", search, search)
	}

	var total int64
	query.Count(&total)

	var books []book.Book
	if err := query.Offset(offset).Limit(*reqData.Limit).Order("title asc").Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	response := map[string]interface{}{
		"books": books,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched successfully!", response)
}

// GetBookDetails returns the aggregated view-model for one book
func GetBookDetails(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bookID := c.Locals("bookID").(int)

	view, err := AggregateBook(database.Database.Db, uint(bookID))
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book fetched successfully!", view)
}
