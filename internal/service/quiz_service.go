package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"dailylect/internal/catalog"
	"dailylect/internal/models"
	"dailylect/internal/progress"
	"dailylect/internal/repository"
	"dailylect/internal/validation"
)

// DefaultQuizSize is the number of questions in a standard quiz.
const DefaultQuizSize = 10

var (
	// ErrCatalogExhausted means the word bank cannot supply three
	// distinct-translation distractors for some word. This is a data
	// problem, not a user error.
	ErrCatalogExhausted = errors.New("word catalog cannot supply enough distractors")

	// ErrQuizLocked means the user has not accrued enough login days yet.
	ErrQuizLocked = errors.New("quiz locked until enough login days accrue")
)

// Quiz is a generated question set handed to a client for one session.
// Nothing about it is persisted; only the graded result is.
type Quiz struct {
	ID        string                `json:"id"`
	Questions []models.QuizQuestion `json:"questions"`
}

// QuizService generates quizzes from the word catalog, gates them behind
// login-day access, and grades submitted attempts.
type QuizService struct {
	catalog    *catalog.Catalog
	loginRepo  *repository.LoginRepository
	resultRepo *repository.ResultRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(cat *catalog.Catalog, loginRepo *repository.LoginRepository, resultRepo *repository.ResultRepository) *QuizService {
	return &QuizService{
		catalog:    cat,
		loginRepo:  loginRepo,
		resultRepo: resultRepo,
	}
}

// CheckAccess reports whether the user's login ledger has unlocked the quiz.
func (s *QuizService) CheckAccess(userID int64) (models.QuizAccess, error) {
	days, err := s.loginRepo.ListLoginDays(userID)
	if err != nil {
		return models.QuizAccess{}, fmt.Errorf("failed to list login days: %w", err)
	}

	return models.QuizAccess{
		HasAccess:     progress.HasQuizAccess(days),
		LoginDays:     progress.LoginDayCount(days),
		DaysRemaining: progress.DaysUntilAccess(days),
	}, nil
}

// GenerateQuiz builds a fresh quiz for a user, enforcing the login-day
// gate. Returns ErrQuizLocked before touching the generator when the user
// hasn't unlocked quizzes yet.
func (s *QuizService) GenerateQuiz(userID int64, count int) (*Quiz, error) {
	access, err := s.CheckAccess(userID)
	if err != nil {
		return nil, err
	}
	if !access.HasAccess {
		return nil, ErrQuizLocked
	}

	questions, err := generateQuestions(s.catalog.Words(), count)
	if err != nil {
		return nil, err
	}

	return &Quiz{
		ID:        uuid.New().String(),
		Questions: questions,
	}, nil
}

// generateQuestions draws count distinct words uniformly at random from the
// word bank and builds one multiple-choice question per word. When the bank
// holds fewer words than requested the quiz is truncated to the whole bank.
func generateQuestions(words []models.Word, count int) ([]models.QuizQuestion, error) {
	if count <= 0 {
		count = DefaultQuizSize
	}
	if len(words) == 0 {
		return nil, ErrCatalogExhausted
	}
	if count > len(words) {
		log.Printf("Quiz truncated: %d questions requested, catalog holds %d words", count, len(words))
		count = len(words)
	}

	shuffled := make([]models.Word, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := make([]models.QuizQuestion, 0, count)
	for _, word := range shuffled[:count] {
		options, err := buildOptions(word, words)
		if err != nil {
			return nil, err
		}
		questions = append(questions, models.QuizQuestion{
			ID:            word.ID,
			Word:          word,
			Options:       options,
			CorrectAnswer: word.Translation,
		})
	}

	return questions, nil
}

// buildOptions assembles four answer choices: the correct translation plus
// three distractors drawn from other words. Distractors must differ from the
// correct translation and from each other, so no two options ever read the
// same.
func buildOptions(word models.Word, words []models.Word) ([]string, error) {
	seen := map[string]bool{word.Translation: true}
	var pool []string
	for _, w := range words {
		if w.ID == word.ID || seen[w.Translation] {
			continue
		}
		seen[w.Translation] = true
		pool = append(pool, w.Translation)
	}

	if len(pool) < 3 {
		return nil, fmt.Errorf("%w: word %s has %d candidate distractors", ErrCatalogExhausted, word.ID, len(pool))
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	options := append([]string{word.Translation}, pool[:3]...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// SubmittedAnswer is one answer in a quiz submission. Grading is done
// server-side against the catalog; the client's idea of correctness is
// ignored.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// SubmitResult grades a submitted quiz attempt and persists it. Grading and
// persistence are independent: when the save fails the graded result is
// still returned alongside the error so the caller can show the score and
// surface the storage problem separately.
func (s *QuizService) SubmitResult(userID int64, quizID string, submitted []SubmittedAnswer, completedAt time.Time) (*models.QuizResult, error) {
	if err := validation.ValidateQuizSubmission(quizID, len(submitted), len(submitted)); err != nil {
		return nil, err
	}

	result := &models.QuizResult{
		QuizID:         quizID,
		UserID:         userID,
		TotalQuestions: len(submitted),
		CompletedAt:    completedAt,
	}

	for _, ans := range submitted {
		word, ok := s.catalog.WordByID(ans.QuestionID)
		if !ok {
			return nil, validation.ValidationError{Field: "answers", Message: fmt.Sprintf("unknown question id %q", ans.QuestionID)}
		}

		// Exact string match, case-sensitive, no trimming.
		isCorrect := ans.UserAnswer == word.Translation
		if isCorrect {
			result.Score++
		}
		result.Answers = append(result.Answers, models.QuizAnswer{
			QuestionID:    ans.QuestionID,
			UserAnswer:    ans.UserAnswer,
			CorrectAnswer: word.Translation,
			IsCorrect:     isCorrect,
		})
	}

	if err := s.resultRepo.SaveResult(result); err != nil {
		return result, fmt.Errorf("failed to save quiz result: %w", err)
	}

	return result, nil
}
