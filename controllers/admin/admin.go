package adminController

import (
	"errors"

	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListUsers lists users with pagination and optional search
func ListUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page   *int    `json:"page"`
		Limit  *int    `json:"limit"`
		Search *string `json:"search"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	offset := (*reqData.Page - 1) * (*reqData.Limit)

	query := db.Model(&models.User{}).Where("is_deleted = ?", false)
	if reqData.Search != nil && *reqData.Search != "" {
		search := "%" + *reqData.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset(offset).Limit(*reqData.Limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", response)
}

// AssignRole grants a role to a user
func AssignRole(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)
	role := c.Locals("targetRole").(string)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	row := models.UserRole{UserID: uint(targetID), Role: role}
	err := database.Database.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role assigned successfully!", nil)
}

// RemoveRole revokes a role from a user
func RemoveRole(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)
	role := c.Locals("targetRole").(string)

	// Unscoped: a tombstoned assignment would block re-granting the role later.
	result := database.Database.Db.Unscoped().Where("user_id = ? AND role = ?", targetID, role).
		Delete(&models.UserRole{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove role!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role assignment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role removed successfully!", nil)
}

// GetSetting returns one site setting by key
func GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Setting key is required!", nil)
	}

	var setting models.SiteSetting
	if err := database.Database.Db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting fetched successfully!", setting)
}

// UpsertSetting creates or updates one site setting
func UpsertSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Setting key is required!", nil)
	}

	var reqData struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	setting := models.SiteSetting{Key: key, Value: reqData.Value}
	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting saved successfully!", setting)
}

// GetDashboard returns admin dashboard stats
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var activeSubscriptions int64
	db.Model(&models.User{}).
		Where("is_deleted = ? AND subscription_status = ?", false, models.SubscriptionActive).
		Count(&activeSubscriptions)

	var pastDue int64
	db.Model(&models.User{}).
		Where("is_deleted = ? AND subscription_status = ?", false, models.SubscriptionPastDue).
		Count(&pastDue)

	var signupsToday int64
	db.Model(&models.User{}).
		Where("is_deleted = ? AND created_at >= ?", false, now.BeginningOfDay()).
		Count(&signupsToday)

	var quizCompleted int64
	db.Model(&models.User{}).Where("is_deleted = ? AND quiz_completed = ?", false, true).Count(&quizCompleted)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totalUsers":           totalUsers,
		"activeSubscriptions":  activeSubscriptions,
		"pastDueSubscriptions": pastDue,
		"signupsToday":         signupsToday,
		"quizCompleted":        quizCompleted,
	})
}
