package adminRoutes

import (
	adminControllers "bookwise/controllers/admin"
	bookControllers "bookwise/controllers/book"
	"bookwise/middleware"
	"bookwise/models"
	adminValidators "bookwise/validators/admin"
	bookValidators "bookwise/validators/book"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin panel routes (admin role required)
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Book management
	adminGroup.Post("/book", bookControllers.CreateBook)
	adminGroup.Put("/book/:id", bookValidators.BookID(), bookControllers.UpdateBook)
	adminGroup.Delete("/book/:id", bookValidators.BookID(), bookControllers.DeleteBook)
	adminGroup.Put("/book/:id/central-message", bookValidators.BookID(), bookControllers.UpsertCentralMessage)
	adminGroup.Put("/book/:id/evidence-quality", bookValidators.BookID(), bookControllers.UpsertEvidenceQuality)
	adminGroup.Put("/book/:id/implementation", bookValidators.BookID(), bookControllers.UpsertImplementation)
	adminGroup.Put("/book/:id/expert-reflection", bookValidators.BookID(), bookControllers.UpsertExpertReflection)
	adminGroup.Put("/book/:id/concepts", bookValidators.BookID(), bookControllers.ReplaceCoreConcepts)
	adminGroup.Put("/book/:id/age-applications", bookValidators.BookID(), bookControllers.ReplaceAgeApplications)
	adminGroup.Put("/book/:id/chapters", bookValidators.BookID(), bookControllers.ReplaceChapters)

	// User and role management
	adminGroup.Get("/users", adminValidators.UserList(), adminControllers.ListUsers)
	adminGroup.Post("/users/:id/roles", adminValidators.RoleChange(), adminControllers.AssignRole)
	adminGroup.Delete("/users/:id/roles", adminValidators.RoleChange(), adminControllers.RemoveRole)

	// Site settings and dashboard
	adminGroup.Get("/settings/:key", adminControllers.GetSetting)
	adminGroup.Put("/settings/:key", adminControllers.UpsertSetting)
	adminGroup.Get("/dashboard", adminControllers.GetDashboard)
}
