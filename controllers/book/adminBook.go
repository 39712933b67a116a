package bookController

import (
	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models/book"
	"bookwise/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookPayload struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
	ISBN            string `json:"isbn"`
	PageCount       int    `json:"pageCount"`
	Genre           string `json:"genre"`
	TargetAudience  string `json:"targetAudience"`
	ReadingLevel    string `json:"readingLevel"`
	CoverImageURL   string `json:"coverImageUrl"`
}

// CreateBook creates a new book with scalar metadata
func CreateBook(c *fiber.Ctx) error {
	var reqData bookPayload
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required!", nil)
	}

	newBook := book.Book{
		Title:           reqData.Title,
		Author:          reqData.Author,
		PublicationYear: reqData.PublicationYear,
		ISBN:            reqData.ISBN,
		PageCount:       reqData.PageCount,
		Genre:           reqData.Genre,
		TargetAudience:  reqData.TargetAudience,
		ReadingLevel:    reqData.ReadingLevel,
		CoverImageURL:   reqData.CoverImageURL,
	}

	if err := database.Database.Db.Create(&newBook).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book created successfully!", newBook)
}

// UpdateBook updates a book's scalar metadata
func UpdateBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var existing book.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData bookPayload
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required!", nil)
	}

	updates := map[string]interface{}{
		"title":            reqData.Title,
		"author":           reqData.Author,
		"publication_year": reqData.PublicationYear,
		"isbn":             reqData.ISBN,
		"page_count":       reqData.PageCount,
		"genre":            reqData.Genre,
		"target_audience":  reqData.TargetAudience,
		"reading_level":    reqData.ReadingLevel,
		"cover_image_url":  reqData.CoverImageURL,
	}

	if err := database.Database.Db.Model(&existing).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book updated successfully!", existing)
}

// DeleteBook soft-deletes a book. Sub-entity rows are removed by the cascade
// on their foreign keys when rows are purged.
func DeleteBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var existing book.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	if err := database.Database.Db.Model(&existing).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book deleted successfully!", nil)
}

func findBook(c *fiber.Ctx) (*book.Book, error) {
	bookID := c.Locals("bookID").(int)
	var existing book.Book
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&existing).Error
	return &existing, err
}

// upsertSingleton writes an optional 1:1 sub-entity row for a book.
func upsertSingleton(db *gorm.DB, model interface{}, bookID uint, updates map[string]interface{}) error {
	updates["book_id"] = bookID
	return db.Model(model).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "book_id"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(updates).Error
}

// UpsertCentralMessage creates or replaces a book's central message
func UpsertCentralMessage(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		MainThesis         string `json:"mainThesis"`
		KeyTakeaway        string `json:"keyTakeaway"`
		OneSentenceSummary string `json:"oneSentenceSummary"`
		TargetProblem      string `json:"targetProblem"`
		ProposedSolution   string `json:"proposedSolution"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	err = upsertSingleton(database.Database.Db, &book.CentralMessage{}, existing.ID, map[string]interface{}{
		"main_thesis":          reqData.MainThesis,
		"key_takeaway":         reqData.KeyTakeaway,
		"one_sentence_summary": reqData.OneSentenceSummary,
		"target_problem":       reqData.TargetProblem,
		"proposed_solution":    reqData.ProposedSolution,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save central message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Central message saved successfully!", nil)
}

// UpsertEvidenceQuality creates or replaces a book's evidence-quality record
func UpsertEvidenceQuality(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		ResearchBased      bool     `json:"researchBased"`
		SourceTypes        []string `json:"sourceTypes"`
		CitationCount      int      `json:"citationCount"`
		AuthorCredentials  string   `json:"authorCredentials"`
		StrengthOfEvidence string   `json:"strengthOfEvidence"`
		PotentialBiases    string   `json:"potentialBiases"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	err = upsertSingleton(database.Database.Db, &book.EvidenceQuality{}, existing.ID, map[string]interface{}{
		"research_based":       reqData.ResearchBased,
		"source_types":         utils.JSONList(reqData.SourceTypes),
		"citation_count":       reqData.CitationCount,
		"author_credentials":   reqData.AuthorCredentials,
		"strength_of_evidence": reqData.StrengthOfEvidence,
		"potential_biases":     reqData.PotentialBiases,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save evidence quality!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evidence quality saved successfully!", nil)
}

// UpsertImplementation creates or replaces a book's implementation guide
func UpsertImplementation(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		GettingStartedSteps []string `json:"gettingStartedSteps"`
		CommonObstacles     []string `json:"commonObstacles"`
		SuccessMetrics      []string `json:"successMetrics"`
		TimeInvestment      string   `json:"timeInvestment"`
		DifficultyLevel     string   `json:"difficultyLevel"`
		FamilyAdaptation    string   `json:"familyAdaptation"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	err = upsertSingleton(database.Database.Db, &book.Implementation{}, existing.ID, map[string]interface{}{
		"getting_started_steps": utils.JSONList(reqData.GettingStartedSteps),
		"common_obstacles":      utils.JSONList(reqData.CommonObstacles),
		"success_metrics":       utils.JSONList(reqData.SuccessMetrics),
		"time_investment":       reqData.TimeInvestment,
		"difficulty_level":      reqData.DifficultyLevel,
		"family_adaptation":     reqData.FamilyAdaptation,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save implementation guide!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Implementation guide saved successfully!", nil)
}

// UpsertExpertReflection creates or replaces a book's expert reflection
func UpsertExpertReflection(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		OverallAssessment      string `json:"overallAssessment"`
		RecommendationLevel    string `json:"recommendationLevel"`
		BestFor                string `json:"bestFor"`
		ImplementationPriority string `json:"implementationPriority"`
		LongTermImpact         string `json:"longTermImpact"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	err = upsertSingleton(database.Database.Db, &book.ExpertReflection{}, existing.ID, map[string]interface{}{
		"overall_assessment":      reqData.OverallAssessment,
		"recommendation_level":    reqData.RecommendationLevel,
		"best_for":                reqData.BestFor,
		"implementation_priority": reqData.ImplementationPriority,
		"long_term_impact":        reqData.LongTermImpact,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save expert reflection!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expert reflection saved successfully!", nil)
}

// ReplaceCoreConcepts replaces the ordered core-concept list of a book
func ReplaceCoreConcepts(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		Concepts []struct {
			Name                 string `json:"name"`
			Description          string `json:"description"`
			PracticalApplication string `json:"practicalApplication"`
			SupportingEvidence   string `json:"supportingEvidence"`
			Challenges           string `json:"challenges"`
		} `json:"concepts"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tx := database.Database.Db.Begin()
	// Unscoped: tombstoned rows would still occupy the sort-order slots.
	if err := tx.Unscoped().Where("book_id = ?", existing.ID).Delete(&book.CoreConcept{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save core concepts!", nil)
	}
	for i, concept := range reqData.Concepts {
		row := book.CoreConcept{
			BookID:               existing.ID,
			Name:                 concept.Name,
			Description:          concept.Description,
			PracticalApplication: concept.PracticalApplication,
			SupportingEvidence:   concept.SupportingEvidence,
			Challenges:           concept.Challenges,
			SortOrder:            i,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save core concepts!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Core concepts saved successfully!", nil)
}

// ReplaceAgeApplications replaces the age-application rows of a book
func ReplaceAgeApplications(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		Applications []struct {
			AgeGroup                    string   `json:"ageGroup"`
			AgeRange                    string   `json:"ageRange"`
			Strategies                  []string `json:"strategies"`
			DevelopmentalConsiderations string   `json:"developmentalConsiderations"`
			Examples                    []string `json:"examples"`
		} `json:"applications"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	for _, app := range reqData.Applications {
		if app.AgeGroup == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Age group is required for every application!", nil)
		}
	}

	tx := database.Database.Db.Begin()
	if err := tx.Unscoped().Where("book_id = ?", existing.ID).Delete(&book.AgeApplication{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save age applications!", nil)
	}
	for _, app := range reqData.Applications {
		row := book.AgeApplication{
			BookID:                      existing.ID,
			AgeGroup:                    app.AgeGroup,
			AgeRange:                    app.AgeRange,
			Strategies:                  utils.JSONList(app.Strategies),
			DevelopmentalConsiderations: app.DevelopmentalConsiderations,
			Examples:                    utils.JSONList(app.Examples),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save age applications!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Age applications saved successfully!", nil)
}

// ReplaceChapters replaces the chapter list of a book
func ReplaceChapters(c *fiber.Ctx) error {
	existing, err := findBook(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var reqData struct {
		Chapters []struct {
			ChapterNumber   int      `json:"chapterNumber"`
			Title           string   `json:"title"`
			MainTakeaway    string   `json:"mainTakeaway"`
			KeyPoints       []string `json:"keyPoints"`
			PracticalAdvice []string `json:"practicalAdvice"`
			Examples        []string `json:"examples"`
		} `json:"chapters"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	for _, chapter := range reqData.Chapters {
		if chapter.ChapterNumber <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Chapter number must be positive!", nil)
		}
	}

	tx := database.Database.Db.Begin()
	// Unscoped: a tombstoned chapter would still hold its (book, number) slot.
	if err := tx.Unscoped().Where("book_id = ?", existing.ID).Delete(&book.Chapter{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save chapters!", nil)
	}
	for _, chapter := range reqData.Chapters {
		row := book.Chapter{
			BookID:          existing.ID,
			ChapterNumber:   chapter.ChapterNumber,
			Title:           chapter.Title,
			MainTakeaway:    chapter.MainTakeaway,
			KeyPoints:       utils.JSONList(chapter.KeyPoints),
			PracticalAdvice: utils.JSONList(chapter.PracticalAdvice),
			Examples:        utils.JSONList(chapter.Examples),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save chapters!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters saved successfully!", nil)
}
