package book

import (
	"gorm.io/gorm"
)

// CentralMessage is the optional 1:1 thesis summary of a book.
type CentralMessage struct {
	gorm.Model
	BookID             uint   `gorm:"not null;uniqueIndex" json:"bookId"`
	Book               Book   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	MainThesis         string `json:"mainThesis"`
	KeyTakeaway        string `json:"keyTakeaway"`
	OneSentenceSummary string `json:"oneSentenceSummary"`
	TargetProblem      string `json:"targetProblem"`
	ProposedSolution   string `json:"proposedSolution"`
}

func (CentralMessage) TableName() string {
	return "book_central_messages"
}
