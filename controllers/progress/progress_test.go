package progressController

import (
	"encoding/json"
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

	require.NoError(t, db.AutoMigrate(&models.UserBookProgress{}))
	return db
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestReadProgressNoneYet(t *testing.T) {
	db := newTestDB(t)

	row, err := ReadProgress(db, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestUpsertProgressCreatesRow(t *testing.T) {
	db := newTestDB(t)

	row, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(57)})
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 57, row.ProgressPercentage)
	assert.Nil(t, row.CompletedAt)
}

func TestUpsertProgressCompletionStamp(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(57)})
	require.NoError(t, err)

	row, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, 100, row.ProgressPercentage)
	require.NotNil(t, row.CompletedAt)

	// Re-read to make sure the stamp persisted.
	row, err = ReadProgress(db, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.NotNil(t, row.CompletedAt)
}

func TestUpsertProgressPartialMerge(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertProgress(db, 1, 2, ProgressUpdate{
		ProgressPercentage: intPtr(30),
		Notes:              strPtr("great chapter on tantrums"),
	})
	require.NoError(t, err)

	// Updating only the percentage keeps the notes.
	row, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, row.ProgressPercentage)
	assert.Equal(t, "great chapter on tantrums", row.Notes)
}

func TestUpsertProgressBookmarks(t *testing.T) {
	db := newTestDB(t)

	bookmarks := []models.Bookmark{
		{ChapterNumber: 2, Note: "re-read this"},
	}
	row, err := UpsertProgress(db, 1, 2, ProgressUpdate{Bookmarks: &bookmarks})
	require.NoError(t, err)

	var stored []models.Bookmark
	require.NoError(t, json.Unmarshal(row.Bookmarks, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].ChapterNumber)
	assert.NotEmpty(t, stored[0].ID)
	assert.False(t, stored[0].CreatedAt.IsZero())

	// The list is replaced wholesale on the next write.
	replacement := []models.Bookmark{
		{ChapterNumber: 5, Note: "scripts"},
		{ChapterNumber: 7, Note: "summary"},
	}
	row, err = UpsertProgress(db, 1, 2, ProgressUpdate{Bookmarks: &replacement})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(row.Bookmarks, &stored))
	assert.Len(t, stored, 2)
}

func TestUpsertProgressRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(101)})
	assert.Error(t, err)

	_, err = UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(-1)})
	assert.Error(t, err)
}

func TestUpsertProgressSeparateUsers(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertProgress(db, 1, 2, ProgressUpdate{ProgressPercentage: intPtr(80)})
	require.NoError(t, err)
	_, err = UpsertProgress(db, 3, 2, ProgressUpdate{ProgressPercentage: intPtr(10)})
	require.NoError(t, err)

	row, err := ReadProgress(db, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 80, row.ProgressPercentage)

	row, err = ReadProgress(db, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, row.ProgressPercentage)
}
