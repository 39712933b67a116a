package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus enum values (provider values are stored verbatim)
const (
	SubscriptionNone     = "none"
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

type User struct {
	gorm.Model
	Name                 string     `gorm:"default:''" json:"name"`
	Email                string     `gorm:"unique;not null" json:"email"`
	Password             string     `gorm:"not null" json:"-"`
	AvatarURL            string     `gorm:"default:''" json:"avatarUrl"`
	QuizCompleted        bool       `gorm:"default:false" json:"quizCompleted"`
	ParentingStyle       string     `gorm:"default:''" json:"parentingStyle"`
	StripeCustomerID     string     `gorm:"index;default:''" json:"stripeCustomerId"`
	StripeSubscriptionID string     `gorm:"default:''" json:"stripeSubscriptionId"`
	SubscriptionStatus   string     `gorm:"type:varchar(20);default:'none'" json:"subscriptionStatus"`
	LastLogin            *time.Time `json:"lastLogin"`
	IsDeleted            bool       `gorm:"default:false" json:"isDeleted"`
}

func (User) TableName() string {
	return "user_profiles"
}
