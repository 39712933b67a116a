package book

import (
	"gorm.io/gorm"
)

// CoreConcept is one of a book's key ideas, ordered by SortOrder.
type CoreConcept struct {
	gorm.Model
	BookID               uint   `gorm:"not null;index" json:"bookId"`
	Book                 Book   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	PracticalApplication string `json:"practicalApplication"`
	SupportingEvidence   string `json:"supportingEvidence"`
	Challenges           string `json:"challenges"`
	SortOrder            int    `gorm:"default:0" json:"sortOrder"`
}

func (CoreConcept) TableName() string {
	return "book_core_concepts"
}
