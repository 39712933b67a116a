package main

import (
	"bookwise/config"
	"bookwise/database"
	"bookwise/models/book"
	"bookwise/utils"
	"encoding/json"
	"log"
	"os"
)

// catalogEntry is one book record in the import file, with all of its
// sub-entities inlined.
type catalogEntry struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
	ISBN            string `json:"isbn"`
	PageCount       int    `json:"pageCount"`
	Genre           string `json:"genre"`
	TargetAudience  string `json:"targetAudience"`
	ReadingLevel    string `json:"readingLevel"`
	CoverImageURL   string `json:"coverImageUrl"`

	CentralMessage *struct {
		MainThesis         string `json:"mainThesis"`
		KeyTakeaway        string `json:"keyTakeaway"`
		OneSentenceSummary string `json:"oneSentenceSummary"`
		TargetProblem      string `json:"targetProblem"`
		ProposedSolution   string `json:"proposedSolution"`
	} `json:"centralMessage"`

	EvidenceQuality *struct {
		ResearchBased      bool     `json:"researchBased"`
		SourceTypes        []string `json:"sourceTypes"`
		CitationCount      int      `json:"citationCount"`
		AuthorCredentials  string   `json:"authorCredentials"`
		StrengthOfEvidence string   `json:"strengthOfEvidence"`
		PotentialBiases    string   `json:"potentialBiases"`
	} `json:"evidenceQuality"`

	CoreConcepts []struct {
		Name                 string `json:"name"`
		Description          string `json:"description"`
		PracticalApplication string `json:"practicalApplication"`
		SupportingEvidence   string `json:"supportingEvidence"`
		Challenges           string `json:"challenges"`
	} `json:"coreConcepts"`

	AgeApplications []struct {
		AgeGroup                    string   `json:"ageGroup"`
		AgeRange                    string   `json:"ageRange"`
		Strategies                  []string `json:"strategies"`
		DevelopmentalConsiderations string   `json:"developmentalConsiderations"`
		Examples                    []string `json:"examples"`
	} `json:"ageApplications"`

	Implementation *struct {
		GettingStartedSteps []string `json:"gettingStartedSteps"`
		CommonObstacles     []string `json:"commonObstacles"`
		SuccessMetrics      []string `json:"successMetrics"`
		TimeInvestment      string   `json:"timeInvestment"`
		DifficultyLevel     string   `json:"difficultyLevel"`
		FamilyAdaptation    string   `json:"familyAdaptation"`
	} `json:"implementation"`

	ExpertReflection *struct {
		OverallAssessment      string `json:"overallAssessment"`
		RecommendationLevel    string `json:"recommendationLevel"`
		BestFor                string `json:"bestFor"`
		ImplementationPriority string `json:"implementationPriority"`
		LongTermImpact         string `json:"longTermImpact"`
	} `json:"expertReflection"`

	Chapters []struct {
		ChapterNumber   int      `json:"chapterNumber"`
		Title           string   `json:"title"`
		MainTakeaway    string   `json:"mainTakeaway"`
		KeyPoints       []string `json:"keyPoints"`
		PracticalAdvice []string `json:"practicalAdvice"`
		Examples        []string `json:"examples"`
	} `json:"chapters"`
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	path := "catalog.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open catalog file: %v", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}

	log.Printf("Total books to import: %d", len(entries))

	inserted := 0
	updated := 0
	skipped := 0

	for i, entry := range entries {
		if entry.Title == "" {
			log.Printf("Skipping entry %d: missing title", i+1)
			skipped++
			continue
		}

		record := book.Book{
			Title:           entry.Title,
			Author:          entry.Author,
			PublicationYear: entry.PublicationYear,
			ISBN:            entry.ISBN,
			PageCount:       entry.PageCount,
			Genre:           entry.Genre,
			TargetAudience:  entry.TargetAudience,
			ReadingLevel:    entry.ReadingLevel,
			CoverImageURL:   entry.CoverImageURL,
			IsDeleted:       false,
		}

		// Match existing books by ISBN when present, by title otherwise
		var existing book.Book
		query := database.Database.Db.Where("title = ? AND is_deleted = ?", entry.Title, false)
		if entry.ISBN != "" {
			query = database.Database.Db.Where("isbn = ? AND is_deleted = ?", entry.ISBN, false)
		}

		if err := query.First(&existing).Error; err != nil {
			if err := database.Database.Db.Create(&record).Error; err != nil {
				log.Printf("Error inserting book %q: %v", entry.Title, err)
				continue
			}
			inserted++
		} else {
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
			if err := database.Database.Db.Save(&record).Error; err != nil {
				log.Printf("Error updating book %q: %v", entry.Title, err)
				continue
			}
			updated++
		}

		if err := importSubEntities(record.ID, entry); err != nil {
			log.Printf("Error importing sub-entities for %q: %v", entry.Title, err)
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// importSubEntities replaces every sub-entity of the book with the ones from
// the catalog entry. Sections absent from the entry are left untouched.
func importSubEntities(bookID uint, entry catalogEntry) error {
	db := database.Database.Db

	if entry.CentralMessage != nil {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.CentralMessage{})
		row := book.CentralMessage{
			BookID:             bookID,
			MainThesis:         entry.CentralMessage.MainThesis,
			KeyTakeaway:        entry.CentralMessage.KeyTakeaway,
			OneSentenceSummary: entry.CentralMessage.OneSentenceSummary,
			TargetProblem:      entry.CentralMessage.TargetProblem,
			ProposedSolution:   entry.CentralMessage.ProposedSolution,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	if entry.EvidenceQuality != nil {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.EvidenceQuality{})
		row := book.EvidenceQuality{
			BookID:             bookID,
			ResearchBased:      entry.EvidenceQuality.ResearchBased,
			SourceTypes:        utils.JSONList(entry.EvidenceQuality.SourceTypes),
			CitationCount:      entry.EvidenceQuality.CitationCount,
			AuthorCredentials:  entry.EvidenceQuality.AuthorCredentials,
			StrengthOfEvidence: entry.EvidenceQuality.StrengthOfEvidence,
			PotentialBiases:    entry.EvidenceQuality.PotentialBiases,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	if entry.Implementation != nil {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.Implementation{})
		row := book.Implementation{
			BookID:              bookID,
			GettingStartedSteps: utils.JSONList(entry.Implementation.GettingStartedSteps),
			CommonObstacles:     utils.JSONList(entry.Implementation.CommonObstacles),
			SuccessMetrics:      utils.JSONList(entry.Implementation.SuccessMetrics),
			TimeInvestment:      entry.Implementation.TimeInvestment,
			DifficultyLevel:     entry.Implementation.DifficultyLevel,
			FamilyAdaptation:    entry.Implementation.FamilyAdaptation,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	if entry.ExpertReflection != nil {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.ExpertReflection{})
		row := book.ExpertReflection{
			BookID:                 bookID,
			OverallAssessment:      entry.ExpertReflection.OverallAssessment,
			RecommendationLevel:    entry.ExpertReflection.RecommendationLevel,
			BestFor:                entry.ExpertReflection.BestFor,
			ImplementationPriority: entry.ExpertReflection.ImplementationPriority,
			LongTermImpact:         entry.ExpertReflection.LongTermImpact,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	if len(entry.CoreConcepts) > 0 {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.CoreConcept{})
		for i, concept := range entry.CoreConcepts {
			row := book.CoreConcept{
				BookID:               bookID,
				Name:                 concept.Name,
				Description:          concept.Description,
				PracticalApplication: concept.PracticalApplication,
				SupportingEvidence:   concept.SupportingEvidence,
				Challenges:           concept.Challenges,
				SortOrder:            i,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	if len(entry.AgeApplications) > 0 {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.AgeApplication{})
		for _, app := range entry.AgeApplications {
			if app.AgeGroup == "" {
				continue
			}
			row := book.AgeApplication{
				BookID:                      bookID,
				AgeGroup:                    app.AgeGroup,
				AgeRange:                    app.AgeRange,
				Strategies:                  utils.JSONList(app.Strategies),
				DevelopmentalConsiderations: app.DevelopmentalConsiderations,
				Examples:                    utils.JSONList(app.Examples),
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	if len(entry.Chapters) > 0 {
		db.Unscoped().Where("book_id = ?", bookID).Delete(&book.Chapter{})
		for _, ch := range entry.Chapters {
			if ch.ChapterNumber <= 0 {
				continue
			}
			row := book.Chapter{
				BookID:          bookID,
				ChapterNumber:   ch.ChapterNumber,
				Title:           ch.Title,
				MainTakeaway:    ch.MainTakeaway,
				KeyPoints:       utils.JSONList(ch.KeyPoints),
				PracticalAdvice: utils.JSONList(ch.PracticalAdvice),
				Examples:        utils.JSONList(ch.Examples),
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
