package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResponse stores a user's submitted parenting-style quiz answers and the
// computed result. Resubmission replaces the previous row.
type QuizResponse struct {
	gorm.Model
	UserID  uint           `gorm:"not null;uniqueIndex" json:"userId"`
	Answers datatypes.JSON `json:"answers"`
	Style   string         `gorm:"type:varchar(40)" json:"style"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}
