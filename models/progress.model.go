package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Bookmark is one entry in the bookmarks list of a progress row.
type Bookmark struct {
	ID            string    `json:"id"`
	ChapterNumber int       `json:"chapterNumber"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserBookProgress tracks a user's reading progress on one book.
// One row per (user, book) pair, created on first update.
type UserBookProgress struct {
	gorm.Model
	UserID             uint           `gorm:"not null;uniqueIndex:idx_progress_user_book" json:"userId"`
	BookID             uint           `gorm:"not null;uniqueIndex:idx_progress_user_book" json:"bookId"`
	ProgressPercentage int            `gorm:"not null;default:0" json:"progressPercentage"`
	Bookmarks          datatypes.JSON `json:"bookmarks"`
	Notes              string         `json:"notes"`
	CompletedAt        *time.Time     `json:"completedAt"`
}

func (UserBookProgress) TableName() string {
	return "user_book_progress"
}
