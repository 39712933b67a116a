package bookRoutes

import (
	bookControllers "bookwise/controllers/book"
	progressControllers "bookwise/controllers/progress"
	"bookwise/middleware"
	bookValidators "bookwise/validators/book"
	progressValidators "bookwise/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupBookRoutes sets up all user-facing book and progress routes
func SetupBookRoutes(app *fiber.App) {
	bookGroup := app.Group("/book")

	// Book listing and aggregated details
	bookGroup.Get("/list", middleware.JWTMiddleware, bookValidators.BookList(), bookControllers.GetAllBooks)
	bookGroup.Get("/:id", middleware.JWTMiddleware, bookValidators.BookID(), bookControllers.GetBookDetails)

	// Progress tracking
	bookGroup.Get("/:id/progress", middleware.JWTMiddleware, bookValidators.BookID(), progressControllers.GetProgress)
	bookGroup.Post("/:id/progress", middleware.JWTMiddleware, bookValidators.BookID(), progressValidators.ProgressUpdate(), progressControllers.UpdateProgress)
}
