package bookController

import (
	"fmt"
	"testing"

	"bookwise/models/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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

	err = db.AutoMigrate(
		&book.Book{},
		&book.CentralMessage{},
		&book.EvidenceQuality{},
		&book.CoreConcept{},
		&book.AgeApplication{},
		&book.Implementation{},
		&book.ExpertReflection{},
		&book.Chapter{},
	)
	require.NoError(t, err)

	return db
}

func TestAggregateBookNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := AggregateBook(db, 9999)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestAggregateBookDeletedIsNotFound(t *testing.T) {
	db := newTestDB(t)

	row := book.Book{Title: "Gone", IsDeleted: true}
	require.NoError(t, db.Create(&row).Error)

	_, err := AggregateBook(db, row.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestAggregateBookDefaultsForMissingSingletons(t *testing.T) {
	db := newTestDB(t)

	row := book.Book{Title: "The Whole-Brain Child", Author: "Daniel Siegel"}
	require.NoError(t, db.Create(&row).Error)
	chapter := book.Chapter{BookID: row.ID, ChapterNumber: 1, Title: "Intro"}
	require.NoError(t, db.Create(&chapter).Error)

	view, err := AggregateBook(db, row.ID)
	require.NoError(t, err)

	// Missing singletons come back fully shaped with empty defaults.
	assert.Equal(t, "", view.CentralMessage.MainThesis)
	assert.Equal(t, "", view.CentralMessage.KeyTakeaway)
	assert.False(t, view.EvidenceQuality.ResearchBased)
	assert.Equal(t, 0, view.EvidenceQuality.CitationCount)
	assert.Equal(t, []string{}, view.EvidenceQuality.SourceTypes)
	assert.Equal(t, []string{}, view.Implementation.GettingStartedSteps)
	assert.Equal(t, "", view.ExpertReflection.OverallAssessment)

	// Collections are present and empty, never nil.
	assert.NotNil(t, view.CoreConcepts)
	assert.Len(t, view.CoreConcepts, 0)
	assert.NotNil(t, view.AgeApplications)
	assert.Len(t, view.AgeApplications, 0)

	require.Len(t, view.Chapters, 1)
	assert.Equal(t, 1, view.Chapters[0].ChapterNumber)
	assert.Equal(t, "Intro", view.Chapters[0].Title)
	assert.Equal(t, []string{}, view.Chapters[0].KeyPoints)
	assert.Equal(t, []string{}, view.Chapters[0].PracticalAdvice)
}

func TestAggregateBookOrdering(t *testing.T) {
	db := newTestDB(t)

	row := book.Book{Title: "How to Talk"}
	require.NoError(t, db.Create(&row).Error)

	require.NoError(t, db.Create(&book.CoreConcept{BookID: row.ID, Name: "second", SortOrder: 2}).Error)
	require.NoError(t, db.Create(&book.CoreConcept{BookID: row.ID, Name: "first", SortOrder: 1}).Error)
	require.NoError(t, db.Create(&book.Chapter{BookID: row.ID, ChapterNumber: 3, Title: "Three"}).Error)
	require.NoError(t, db.Create(&book.Chapter{BookID: row.ID, ChapterNumber: 1, Title: "One"}).Error)

	view, err := AggregateBook(db, row.ID)
	require.NoError(t, err)

	require.Len(t, view.CoreConcepts, 2)
	assert.Equal(t, "first", view.CoreConcepts[0].Name)
	assert.Equal(t, "second", view.CoreConcepts[1].Name)

	require.Len(t, view.Chapters, 2)
	assert.Equal(t, 1, view.Chapters[0].ChapterNumber)
	assert.Equal(t, 3, view.Chapters[1].ChapterNumber)
}

func TestAggregateBookAgeApplicationLastWins(t *testing.T) {
	db := newTestDB(t)

	row := book.Book{Title: "Raising Good Humans"}
	require.NoError(t, db.Create(&row).Error)

	first := book.AgeApplication{BookID: row.ID, AgeGroup: "toddler", AgeRange: "1-3"}
	require.NoError(t, db.Create(&first).Error)
	second := book.AgeApplication{BookID: row.ID, AgeGroup: "toddler", AgeRange: "2-4"}
	require.NoError(t, db.Create(&second).Error)

	view, err := AggregateBook(db, row.ID)
	require.NoError(t, err)

	require.Len(t, view.AgeApplications, 1)
	assert.Equal(t, "2-4", view.AgeApplications["toddler"].AgeRange)
}

func TestAggregateBookCoercesMalformedLists(t *testing.T) {
	db := newTestDB(t)

	row := book.Book{Title: "Simplicity Parenting"}
	require.NoError(t, db.Create(&row).Error)

	chapter := book.Chapter{
		BookID:        row.ID,
		ChapterNumber: 1,
		Title:         "Soul Fever",
		KeyPoints:     datatypes.JSON(`"not an array"`),
		Examples:      datatypes.JSON(`{"oops": true}`),
	}
	require.NoError(t, db.Create(&chapter).Error)

	app := book.AgeApplication{
		BookID:     row.ID,
		AgeGroup:   "school-age",
		Strategies: datatypes.JSON(`["declutter", "rhythm"]`),
	}
	require.NoError(t, db.Create(&app).Error)

	view, err := AggregateBook(db, row.ID)
	require.NoError(t, err)

	require.Len(t, view.Chapters, 1)
	assert.Equal(t, []string{}, view.Chapters[0].KeyPoints)
	assert.Equal(t, []string{}, view.Chapters[0].Examples)
	assert.Equal(t, []string{"declutter", "rhythm"}, view.AgeApplications["school-age"].Strategies)
}
