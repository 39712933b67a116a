package book

import (
	"gorm.io/gorm"
)

// ExpertReflection is the optional 1:1 editorial assessment of a book.
type ExpertReflection struct {
	gorm.Model
	BookID                 uint   `gorm:"not null;uniqueIndex" json:"bookId"`
	Book                   Book   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	OverallAssessment      string `json:"overallAssessment"`
	RecommendationLevel    string `json:"recommendationLevel"`
	BestFor                string `json:"bestFor"`
	ImplementationPriority string `json:"implementationPriority"`
	LongTermImpact         string `json:"longTermImpact"`
}

func (ExpertReflection) TableName() string {
	return "book_expert_reflections"
}
