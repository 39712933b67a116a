package book

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AgeApplication describes how a book's advice applies to one age group.
// The age-group label is treated as unique per book at read time: duplicate
// rows are tolerated and the later row wins in the aggregated map.
type AgeApplication struct {
	gorm.Model
	BookID                      uint           `gorm:"not null;index" json:"bookId"`
	Book                        Book           `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	AgeGroup                    string         `gorm:"not null" json:"ageGroup"`
	AgeRange                    string         `json:"ageRange"`
	Strategies                  datatypes.JSON `json:"strategies"`
	DevelopmentalConsiderations string         `json:"developmentalConsiderations"`
	Examples                    datatypes.JSON `json:"examples"`
}

func (AgeApplication) TableName() string {
	return "book_age_applications"
}
