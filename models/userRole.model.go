package models

import (
	"gorm.io/gorm"
)

// Role enum values
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// UserRole maps a user to an assigned role. A user with no rows has the
// implicit role "user".
type UserRole struct {
	gorm.Model
	UserID uint   `gorm:"not null;index;uniqueIndex:idx_user_roles_user_role" json:"userId"`
	Role   string `gorm:"not null;type:varchar(20);uniqueIndex:idx_user_roles_user_role" json:"role"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// ValidRole reports whether role is one of the fixed role enumeration values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleModerator || role == RoleUser
}
