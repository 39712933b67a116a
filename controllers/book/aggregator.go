package bookController

import (
	"errors"
	"fmt"

	"bookwise/models/book"
	"bookwise/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrBookNotFound is returned when the root book row does not exist.
var ErrBookNotFound = errors.New("book not found")

// View-model types. Every field is always populated: a missing optional
// singleton yields a fully-shaped zero value, never null, and every stored
// JSON list is coerced to []string through utils.StringList.

type CentralMessageView struct {
	MainThesis         string `json:"mainThesis"`
	KeyTakeaway        string `json:"keyTakeaway"`
	OneSentenceSummary string `json:"oneSentenceSummary"`
	TargetProblem      string `json:"targetProblem"`
	ProposedSolution   string `json:"proposedSolution"`
}

type EvidenceQualityView struct {
	ResearchBased      bool     `json:"researchBased"`
	SourceTypes        []string `json:"sourceTypes"`
	CitationCount      int      `json:"citationCount"`
	AuthorCredentials  string   `json:"authorCredentials"`
	StrengthOfEvidence string   `json:"strengthOfEvidence"`
	PotentialBiases    string   `json:"potentialBiases"`
}

type CoreConceptView struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	PracticalApplication string `json:"practicalApplication"`
	SupportingEvidence   string `json:"supportingEvidence"`
	Challenges           string `json:"challenges"`
	SortOrder            int    `json:"sortOrder"`
}

type AgeApplicationView struct {
	AgeRange                    string   `json:"ageRange"`
	Strategies                  []string `json:"strategies"`
	DevelopmentalConsiderations string   `json:"developmentalConsiderations"`
	Examples                    []string `json:"examples"`
}

type ImplementationView struct {
	GettingStartedSteps []string `json:"gettingStartedSteps"`
	CommonObstacles     []string `json:"commonObstacles"`
	SuccessMetrics      []string `json:"successMetrics"`
	TimeInvestment      string   `json:"timeInvestment"`
	DifficultyLevel     string   `json:"difficultyLevel"`
	FamilyAdaptation    string   `json:"familyAdaptation"`
}

type ExpertReflectionView struct {
	OverallAssessment      string `json:"overallAssessment"`
	RecommendationLevel    string `json:"recommendationLevel"`
	BestFor                string `json:"bestFor"`
	ImplementationPriority string `json:"implementationPriority"`
	LongTermImpact         string `json:"longTermImpact"`
}

type ChapterView struct {
	ChapterNumber   int      `json:"chapterNumber"`
	Title           string   `json:"title"`
	MainTakeaway    string   `json:"mainTakeaway"`
	KeyPoints       []string `json:"keyPoints"`
	PracticalAdvice []string `json:"practicalAdvice"`
	Examples        []string `json:"examples"`
}

// BookView is the composite view-model assembled from a book and its seven
// sub-entity categories.
type BookView struct {
	book.Book
	CentralMessage   CentralMessageView            `json:"centralMessage"`
	EvidenceQuality  EvidenceQualityView           `json:"evidenceQuality"`
	CoreConcepts     []CoreConceptView             `json:"coreConcepts"`
	AgeApplications  map[string]AgeApplicationView `json:"ageApplications"`
	Implementation   ImplementationView            `json:"implementation"`
	ExpertReflection ExpertReflectionView          `json:"expertReflection"`
	Chapters         []ChapterView                 `json:"chapters"`
}

// singletonFetch loads an optional 1:1 row. A missing row is not an error;
// dest keeps its zero value. Any other store failure is fatal.
func singletonFetch(db *gorm.DB, bookID uint, dest interface{}) error {
	err := db.Where("book_id = ?", bookID).First(dest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// AggregateBook assembles the composite view-model for one book id. The root
// book is fetched first; the seven sub-entity fetches then run concurrently
// and the result is built once all of them have settled. Pure read.
func AggregateBook(db *gorm.DB, bookID uint) (*BookView, error) {
	var root book.Book
	if err := db.Where("id = ? AND is_deleted = ?", bookID, false).First(&root).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to fetch book %d: %w", bookID, err)
	}

	var (
		centralMessage   book.CentralMessage
		evidenceQuality  book.EvidenceQuality
		coreConcepts     []book.CoreConcept
		ageApplications  []book.AgeApplication
		implementation   book.Implementation
		expertReflection book.ExpertReflection
		chapters         []book.Chapter
	)

	// Each goroutine writes a distinct variable; no ordering is assumed
	// between the seven fetches.
	var g errgroup.Group

	g.Go(func() error { return singletonFetch(db, bookID, &centralMessage) })
	g.Go(func() error { return singletonFetch(db, bookID, &evidenceQuality) })
	g.Go(func() error { return singletonFetch(db, bookID, &implementation) })
	g.Go(func() error { return singletonFetch(db, bookID, &expertReflection) })
	g.Go(func() error {
		return db.Where("book_id = ?", bookID).Order("sort_order asc").Find(&coreConcepts).Error
	})
	g.Go(func() error {
		return db.Where("book_id = ?", bookID).Order("id asc").Find(&ageApplications).Error
	})
	g.Go(func() error {
		return db.Where("book_id = ?", bookID).Order("chapter_number asc").Find(&chapters).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch book content for %d: %w", bookID, err)
	}

	view := &BookView{
		Book: root,
		CentralMessage: CentralMessageView{
			MainThesis:         centralMessage.MainThesis,
			KeyTakeaway:        centralMessage.KeyTakeaway,
			OneSentenceSummary: centralMessage.OneSentenceSummary,
			TargetProblem:      centralMessage.TargetProblem,
			ProposedSolution:   centralMessage.ProposedSolution,
		},
		EvidenceQuality: EvidenceQualityView{
			ResearchBased:      evidenceQuality.ResearchBased,
			SourceTypes:        utils.StringList(evidenceQuality.SourceTypes),
			CitationCount:      evidenceQuality.CitationCount,
			AuthorCredentials:  evidenceQuality.AuthorCredentials,
			StrengthOfEvidence: evidenceQuality.StrengthOfEvidence,
			PotentialBiases:    evidenceQuality.PotentialBiases,
		},
		CoreConcepts:    make([]CoreConceptView, 0, len(coreConcepts)),
		AgeApplications: make(map[string]AgeApplicationView, len(ageApplications)),
		Implementation: ImplementationView{
			GettingStartedSteps: utils.StringList(implementation.GettingStartedSteps),
			CommonObstacles:     utils.StringList(implementation.CommonObstacles),
			SuccessMetrics:      utils.StringList(implementation.SuccessMetrics),
			TimeInvestment:      implementation.TimeInvestment,
			DifficultyLevel:     implementation.DifficultyLevel,
			FamilyAdaptation:    implementation.FamilyAdaptation,
		},
		ExpertReflection: ExpertReflectionView{
			OverallAssessment:      expertReflection.OverallAssessment,
			RecommendationLevel:    expertReflection.RecommendationLevel,
			BestFor:                expertReflection.BestFor,
			ImplementationPriority: expertReflection.ImplementationPriority,
			LongTermImpact:         expertReflection.LongTermImpact,
		},
		Chapters: make([]ChapterView, 0, len(chapters)),
	}

	for _, concept := range coreConcepts {
		view.CoreConcepts = append(view.CoreConcepts, CoreConceptView{
			Name:                 concept.Name,
			Description:          concept.Description,
			PracticalApplication: concept.PracticalApplication,
			SupportingEvidence:   concept.SupportingEvidence,
			Challenges:           concept.Challenges,
			SortOrder:            concept.SortOrder,
		})
	}

	// Fold into a map keyed by age-group label. A duplicate label keeps the
	// later row.
	for _, app := range ageApplications {
		view.AgeApplications[app.AgeGroup] = AgeApplicationView{
			AgeRange:                    app.AgeRange,
			Strategies:                  utils.StringList(app.Strategies),
			DevelopmentalConsiderations: app.DevelopmentalConsiderations,
			Examples:                    utils.StringList(app.Examples),
		}
	}

	for _, chapter := range chapters {
		view.Chapters = append(view.Chapters, ChapterView{
			ChapterNumber:   chapter.ChapterNumber,
			Title:           chapter.Title,
			MainTakeaway:    chapter.MainTakeaway,
			KeyPoints:       utils.StringList(chapter.KeyPoints),
			PracticalAdvice: utils.StringList(chapter.PracticalAdvice),
			Examples:        utils.StringList(chapter.Examples),
		})
	}

	return view, nil
}
