package book

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvidenceQuality is the optional 1:1 assessment of a book's research basis.
type EvidenceQuality struct {
	gorm.Model
	BookID             uint           `gorm:"not null;uniqueIndex" json:"bookId"`
	Book               Book           `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	ResearchBased      bool           `gorm:"default:false" json:"researchBased"`
	SourceTypes        datatypes.JSON `json:"sourceTypes"`
	CitationCount      int            `gorm:"default:0" json:"citationCount"`
	AuthorCredentials  string         `json:"authorCredentials"`
	StrengthOfEvidence string         `json:"strengthOfEvidence"`
	PotentialBiases    string         `json:"potentialBiases"`
}

func (EvidenceQuality) TableName() string {
	return "book_evidence_quality"
}
