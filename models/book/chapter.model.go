package book

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chapter is one chapter summary, ordered by ChapterNumber (unique per book).
type Chapter struct {
	gorm.Model
	BookID          uint           `gorm:"not null;uniqueIndex:idx_chapter_book_number" json:"bookId"`
	Book            Book           `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	ChapterNumber   int            `gorm:"not null;uniqueIndex:idx_chapter_book_number" json:"chapterNumber"`
	Title           string         `json:"title"`
	MainTakeaway    string         `json:"mainTakeaway"`
	KeyPoints       datatypes.JSON `json:"keyPoints"`
	PracticalAdvice datatypes.JSON `json:"practicalAdvice"`
	Examples        datatypes.JSON `json:"examples"`
}

func (Chapter) TableName() string {
	return "book_chapters"
}
