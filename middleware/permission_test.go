package middleware

import (
	"fmt"
	"testing"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserRole{}))
	return db
}

func TestGetUserRolesEmpty(t *testing.T) {
	db := newTestDB(t)

	// No rows means the implicit "user" role, not an error.
	roles, err := GetUserRoles(db, 42)
	require.NoError(t, err)
	assert.Equal(t, []string{}, roles)
}

func TestGetUserRoles(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.UserRole{UserID: 1, Role: models.RoleAdmin}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: 1, Role: models.RoleModerator}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: 2, Role: models.RoleUser}).Error)

	roles, err := GetUserRoles(db, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.RoleAdmin, models.RoleModerator}, roles)
}

func TestIsAdmin(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.UserRole{UserID: 1, Role: models.RoleAdmin}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: 2, Role: models.RoleModerator}).Error)

	isAdmin, err := IsAdmin(db, 1)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = IsAdmin(db, 2)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = IsAdmin(db, 3)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
