package book

import (
	"gorm.io/gorm"
)

// Book is the root content entity summarizing one published work.
// Sub-entity rows cascade on delete via their foreign keys.
type Book struct {
	gorm.Model
	Title           string `gorm:"not null" json:"title"`
	Author          string `gorm:"default:''" json:"author"`
	PublicationYear int    `gorm:"default:0" json:"publicationYear"`
	ISBN            string `gorm:"default:''" json:"isbn"`
	PageCount       int    `gorm:"default:0" json:"pageCount"`
	Genre           string `gorm:"default:''" json:"genre"`
	TargetAudience  string `gorm:"default:''" json:"targetAudience"`
	ReadingLevel    string `gorm:"default:''" json:"readingLevel"`
	CoverImageURL   string `gorm:"default:''" json:"coverImageUrl"`
	IsDeleted       bool   `gorm:"default:false" json:"isDeleted"`
}

func (Book) TableName() string {
	return "books"
}
