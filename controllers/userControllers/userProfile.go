package userController

import (
	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models"
	"bookwise/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetProfile returns the caller's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	roles, err := middleware.GetUserRoles(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roles!", nil)
	}

	isAdmin := false
	for _, role := range roles {
		if role == models.RoleAdmin {
			isAdmin = true
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":    user,
		"roles":   roles,
		"isAdmin": isAdmin,
	})
}

// UpdateProfile updates the caller's profile fields. Subscription fields are
// never written here; only the webhook path mutates them.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatarUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.AvatarURL != nil {
		updates["avatar_url"] = *reqData.AvatarURL
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// GetRoles returns the caller's assigned roles
func GetRoles(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roles, err := middleware.GetUserRoles(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roles!", nil)
	}

	isAdmin := false
	for _, role := range roles {
		if role == models.RoleAdmin {
			isAdmin = true
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roles fetched successfully!", fiber.Map{
		"roles":   roles,
		"isAdmin": isAdmin,
	})
}

// ComputeParentingStyle tallies quiz answers and returns the dominant style
// label. Ties keep the label seen first in the answer list.
func ComputeParentingStyle(answers []string) string {
	counts := map[string]int{}
	order := []string{}
	for _, answer := range answers {
		if answer == "" {
			continue
		}
		if _, seen := counts[answer]; !seen {
			order = append(order, answer)
		}
		counts[answer]++
	}

	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// SubmitQuiz stores the caller's quiz answers and stamps the computed
// parenting style on the profile. Resubmission overwrites.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Answers []string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	style := ComputeParentingStyle(reqData.Answers)
	if style == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz answers are required!", nil)
	}

	db := database.Database.Db

	response := models.QuizResponse{
		UserID:  userID,
		Answers: utils.JSONList(reqData.Answers),
		Style:   style,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "style", "updated_at"}),
	}).Create(&response).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	updates := map[string]interface{}{
		"quiz_completed":  true,
		"parenting_style": style,
	}
	if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"style": style,
	})
}
