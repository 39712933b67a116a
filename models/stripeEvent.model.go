package models

import (
	"gorm.io/gorm"
)

// StripeEvent records a processed webhook event id so redelivered events are
// applied at most once.
type StripeEvent struct {
	gorm.Model
	EventID string `gorm:"unique;not null" json:"eventId"`
	Type    string `json:"type"`
}

func (StripeEvent) TableName() string {
	return "stripe_events"
}
