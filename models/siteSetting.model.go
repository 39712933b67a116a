package models

import (
	"gorm.io/gorm"
)

// SiteSetting is an admin-editable key/value setting.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `json:"value"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
