package middleware

import (
	"bookwise/database"
	"bookwise/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUserRoles returns the set of roles assigned to a user. An empty set means
// the implicit default role "user"; absence of rows is not an error.
func GetUserRoles(db *gorm.DB, userID uint) ([]string, error) {
	var rows []models.UserRole
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, row.Role)
	}
	return roles, nil
}

// IsAdmin reports whether the user's role set contains "admin".
func IsAdmin(db *gorm.DB, userID uint) (bool, error) {
	roles, err := GetUserRoles(db, userID)
	if err != nil {
		return false, err
	}
	for _, role := range roles {
		if role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// RequireRole returns a middleware that checks if the user holds the required role
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get user ID from context (set by the JWT middleware)
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		err := database.Database.Db.Where("user_id = ? AND role = ?",
			userID, requiredRole).First(&models.UserRole{}).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		// Role found, proceed
		return c.Next()
	}
}
