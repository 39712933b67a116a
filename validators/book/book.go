package bookValidator

import (
	"bookwise/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BookID validates the :id path parameter
func BookID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookIDStr := strings.TrimSpace(c.Params("id"))
		if bookIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Book ID is required!", nil)
		}

		bookID, err := strconv.Atoi(bookIDStr)
		if err != nil || bookID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Book ID!", nil)
		}

		c.Locals("bookID", bookID)
		return c.Next()
	}
}

// BookList validates pagination and search query parameters
func BookList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `json:"page"`
			Limit  *int    `json:"limit"`
			Search *string `json:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Default pagination
		if reqData.Page == nil {
			page := 1
			reqData.Page = &page
		}
		if reqData.Limit == nil {
			limit := 20
			reqData.Limit = &limit
		}

		errors := make(map[string]string)

		if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if *reqData.Limit < 1 || *reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookList", reqData)
		return c.Next()
	}
}
