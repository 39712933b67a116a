package userRoutes

import (
	controllers "bookwise/controllers/userControllers"
	"bookwise/middleware"
	validators "bookwise/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile, roles and quiz routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.ProfileUpdate(), controllers.UpdateProfile)
	userGroup.Get("/roles", middleware.JWTMiddleware, controllers.GetRoles)
	userGroup.Post("/quiz", middleware.JWTMiddleware, validators.Quiz(), controllers.SubmitQuiz)
}
