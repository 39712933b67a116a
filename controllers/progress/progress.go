package progressController

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models"
	"bookwise/models/book"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressUpdate is a partial update; nil fields are left untouched.
type ProgressUpdate struct {
	ProgressPercentage *int               `json:"progressPercentage"`
	Bookmarks          *[]models.Bookmark `json:"bookmarks"`
	Notes              *string            `json:"notes"`
}

// ReadProgress returns the progress row for (user, book), or (nil, nil) when
// the user has no progress yet. Only genuine store failures are errors.
func ReadProgress(db *gorm.DB, userID, bookID uint) (*models.UserBookProgress, error) {
	var row models.UserBookProgress
	err := db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// UpsertProgress merges a partial update onto the (user, book) progress row,
// creating it if absent. Setting percentage to exactly 100 stamps the
// completion timestamp in the same write; no other path sets it. The bookmark
// list is replaced wholesale; entries without an id get one assigned.
func UpsertProgress(db *gorm.DB, userID, bookID uint, update ProgressUpdate) (*models.UserBookProgress, error) {
	if update.ProgressPercentage != nil &&
		(*update.ProgressPercentage < 0 || *update.ProgressPercentage > 100) {
		return nil, fmt.Errorf("progress percentage must be between 0 and 100")
	}

	row := models.UserBookProgress{
		UserID:    userID,
		BookID:    bookID,
		Bookmarks: datatypes.JSON("[]"),
	}
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if update.ProgressPercentage != nil {
		row.ProgressPercentage = *update.ProgressPercentage
		assignments["progress_percentage"] = *update.ProgressPercentage
		if *update.ProgressPercentage == 100 {
			completed := time.Now()
			row.CompletedAt = &completed
			assignments["completed_at"] = &completed
		}
	}

	if update.Bookmarks != nil {
		bookmarks := *update.Bookmarks
		for i := range bookmarks {
			if bookmarks[i].ID == "" {
				bookmarks[i].ID = uuid.NewString()
			}
			if bookmarks[i].CreatedAt.IsZero() {
				bookmarks[i].CreatedAt = time.Now()
			}
		}
		encoded, err := json.Marshal(bookmarks)
		if err != nil {
			return nil, fmt.Errorf("failed to encode bookmarks: %v", err)
		}
		row.Bookmarks = datatypes.JSON(encoded)
		assignments["bookmarks"] = datatypes.JSON(encoded)
	}

	if update.Notes != nil {
		row.Notes = *update.Notes
		assignments["notes"] = *update.Notes
	}

	// Atomic upsert on (user_id, book_id); last write wins at the row level.
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	return ReadProgress(db, userID, bookID)
}

// GetProgress returns the caller's progress on a book. No progress yet is a
// success with null data, not an error.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bookID := c.Locals("bookID").(int)

	row, err := ReadProgress(database.Database.Db, userID, uint(bookID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	if row == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No progress yet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", row)
}

// UpdateProgress upserts the caller's progress on a book
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bookID := c.Locals("bookID").(int)

	// Book must exist and be visible
	var existing book.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgressUpdate").(*ProgressUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	row, err := UpsertProgress(database.Database.Db, userID, uint(bookID), *reqData)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", row)
}
