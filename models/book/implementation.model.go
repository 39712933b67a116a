package book

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Implementation is the optional 1:1 getting-started guide for a book.
type Implementation struct {
	gorm.Model
	BookID              uint           `gorm:"not null;uniqueIndex" json:"bookId"`
	Book                Book           `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	GettingStartedSteps datatypes.JSON `json:"gettingStartedSteps"`
	CommonObstacles     datatypes.JSON `json:"commonObstacles"`
	SuccessMetrics      datatypes.JSON `json:"successMetrics"`
	TimeInvestment      string         `json:"timeInvestment"`
	DifficultyLevel     string         `json:"difficultyLevel"`
	FamilyAdaptation    string         `json:"familyAdaptation"`
}

func (Implementation) TableName() string {
	return "book_implementation"
}
