package progressValidator

import (
	"bookwise/middleware"

	progressController "bookwise/controllers/progress"

	"github.com/gofiber/fiber/v2"
)

// ProgressUpdate validates the partial progress-update body
func ProgressUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(progressController.ProgressUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProgressPercentage == nil && reqData.Bookmarks == nil && reqData.Notes == nil {
			errors["body"] = "At least one of progressPercentage, bookmarks or notes is required!"
		}
		if reqData.ProgressPercentage != nil &&
			(*reqData.ProgressPercentage < 0 || *reqData.ProgressPercentage > 100) {
			errors["progressPercentage"] = "Progress must be between 0 and 100!"
		}
		if reqData.Bookmarks != nil {
			for _, bookmark := range *reqData.Bookmarks {
				if bookmark.ChapterNumber <= 0 {
					errors["bookmarks"] = "Every bookmark needs a valid chapter number!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressUpdate", reqData)
		return c.Next()
	}
}
