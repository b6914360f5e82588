package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"dailylect/internal/catalog"
	"dailylect/internal/database"
	"dailylect/internal/models"
	"dailylect/internal/progress"
	"dailylect/internal/repository"
)

func testWords(translations ...string) []models.Word {
	words := make([]models.Word, len(translations))
	for i, tr := range translations {
		words[i] = models.Word{
			ID:          string(rune('a' + i)),
			DialectID:   "tagalog",
			Word:        "word-" + tr,
			Translation: tr,
		}
	}
	return words
}

func TestGenerateQuestionsOptionInvariants(t *testing.T) {
	words := catalog.Default().Words()

	// Shuffling is random, so check the invariants across many runs.
	for run := 0; run < 50; run++ {
		questions, err := generateQuestions(words, DefaultQuizSize)
		if err != nil {
			t.Fatalf("generateQuestions() error = %v", err)
		}
		if len(questions) != DefaultQuizSize {
			t.Fatalf("got %d questions, want %d", len(questions), DefaultQuizSize)
		}

		seenWords := make(map[string]bool)
		for _, q := range questions {
			if seenWords[q.ID] {
				t.Errorf("word %s selected twice in one quiz", q.ID)
			}
			seenWords[q.ID] = true

			if len(q.Options) != 4 {
				t.Fatalf("question %s has %d options, want 4", q.ID, len(q.Options))
			}
			if q.CorrectAnswer != q.Word.Translation {
				t.Errorf("question %s correct answer %q != translation %q", q.ID, q.CorrectAnswer, q.Word.Translation)
			}

			seenOptions := make(map[string]bool)
			containsCorrect := false
			for _, opt := range q.Options {
				if seenOptions[opt] {
					t.Errorf("question %s has duplicate option %q", q.ID, opt)
				}
				seenOptions[opt] = true
				if opt == q.CorrectAnswer {
					containsCorrect = true
				}
			}
			if !containsCorrect {
				t.Errorf("question %s options %v missing correct answer %q", q.ID, q.Options, q.CorrectAnswer)
			}
		}
	}
}

func TestGenerateQuestionsCorrectPositionVaries(t *testing.T) {
	words := catalog.Default().Words()

	positions := make(map[int]bool)
	for run := 0; run < 100; run++ {
		questions, err := generateQuestions(words, 1)
		if err != nil {
			t.Fatalf("generateQuestions() error = %v", err)
		}
		q := questions[0]
		for i, opt := range q.Options {
			if opt == q.CorrectAnswer {
				positions[i] = true
			}
		}
	}

	if len(positions) < 2 {
		t.Errorf("correct answer always landed in the same position: %v", positions)
	}
}

func TestGenerateQuestionsTruncation(t *testing.T) {
	words := testWords("one", "two", "three", "four", "five")

	questions, err := generateQuestions(words, 10)
	if err != nil {
		t.Fatalf("generateQuestions() error = %v", err)
	}
	if len(questions) != len(words) {
		t.Errorf("got %d questions, want truncation to %d", len(questions), len(words))
	}
}

func TestGenerateQuestionsCatalogExhausted(t *testing.T) {
	tests := []struct {
		name         string
		translations []string
		wantErr      bool
	}{
		{
			name:         "empty catalog",
			translations: nil,
			wantErr:      true,
		},
		{
			name:         "too few distinct translations",
			translations: []string{"house", "house", "house", "love"},
			wantErr:      true,
		},
		{
			name:         "exactly enough distinct translations",
			translations: []string{"house", "love", "water", "fire"},
			wantErr:      false,
		},
		{
			name:         "shared translations with enough distinct ones",
			translations: []string{"house", "house", "love", "water", "fire"},
			wantErr:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generateQuestions(testWords(tt.translations...), 3)
			if tt.wantErr {
				if !errors.Is(err, ErrCatalogExhausted) {
					t.Errorf("generateQuestions() error = %v, want ErrCatalogExhausted", err)
				}
			} else if err != nil {
				t.Errorf("generateQuestions() error = %v, want nil", err)
			}
		})
	}
}

func TestBuildOptionsExcludesOwnTranslation(t *testing.T) {
	// Two words share the translation "house"; neither may offer it as a
	// distractor for the other.
	words := testWords("house", "house", "love", "water", "fire")
	target := words[0]

	for run := 0; run < 50; run++ {
		options, err := buildOptions(target, words)
		if err != nil {
			t.Fatalf("buildOptions() error = %v", err)
		}
		houses := 0
		for _, opt := range options {
			if opt == "house" {
				houses++
			}
		}
		if houses != 1 {
			t.Errorf("options %v contain %d copies of the correct answer, want 1", options, houses)
		}
	}
}

func setupQuizTest(t *testing.T, name string) (*QuizService, *repository.LoginRepository, int64) {
	t.Helper()

	dbPath := name + ".db"
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	user, err := userRepo.CreateUser("quiz@example.com", "hash", "Quiz Taker")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	loginRepo := repository.NewLoginRepository(db)
	resultRepo := repository.NewResultRepository(db)
	svc := NewQuizService(catalog.Default(), loginRepo, resultRepo)

	return svc, loginRepo, user.ID
}

func TestQuizAccessGate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, loginRepo, userID := setupQuizTest(t, "test_quiz_gate")

	// No logins yet: locked.
	if _, err := svc.GenerateQuiz(userID, DefaultQuizSize); !errors.Is(err, ErrQuizLocked) {
		t.Fatalf("GenerateQuiz() error = %v, want ErrQuizLocked", err)
	}

	start := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < progress.QuizAccessDays-1; i++ {
		if _, err := loginRepo.RecordLogin(userID, start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("RecordLogin() error = %v", err)
		}
	}

	access, err := svc.CheckAccess(userID)
	if err != nil {
		t.Fatalf("CheckAccess() error = %v", err)
	}
	if access.HasAccess || access.DaysRemaining != 1 {
		t.Errorf("access = %+v, want locked with 1 day remaining", access)
	}

	// The seventh distinct day opens the quiz.
	if _, err := loginRepo.RecordLogin(userID, start.AddDate(0, 0, progress.QuizAccessDays-1)); err != nil {
		t.Fatalf("RecordLogin() error = %v", err)
	}

	quiz, err := svc.GenerateQuiz(userID, DefaultQuizSize)
	if err != nil {
		t.Fatalf("GenerateQuiz() after unlock error = %v", err)
	}
	if quiz.ID == "" {
		t.Error("quiz ID should be assigned")
	}
	if len(quiz.Questions) != DefaultQuizSize {
		t.Errorf("got %d questions, want %d", len(quiz.Questions), DefaultQuizSize)
	}
}

func TestSubmitResultGrading(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _, userID := setupQuizTest(t, "test_quiz_submit")

	words := catalog.Default().Words()
	submitted := []SubmittedAnswer{
		{QuestionID: words[0].ID, UserAnswer: words[0].Translation},
		{QuestionID: words[1].ID, UserAnswer: "definitely wrong"},
		{QuestionID: words[2].ID, UserAnswer: words[2].Translation},
	}

	completedAt := time.Date(2026, 8, 25, 19, 0, 0, 0, time.UTC)
	result, err := svc.SubmitResult(userID, "33333333-4444-5555-6666-777777777777", submitted, completedAt)
	if err != nil {
		t.Fatalf("SubmitResult() error = %v", err)
	}

	if result.Score != 2 {
		t.Errorf("score = %d, want 2", result.Score)
	}
	if result.TotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", result.TotalQuestions)
	}
	if !result.Answers[0].IsCorrect || result.Answers[1].IsCorrect || !result.Answers[2].IsCorrect {
		t.Errorf("answer grading wrong: %+v", result.Answers)
	}

	// Unknown question IDs are rejected before grading.
	if _, err := svc.SubmitResult(userID, "another-quiz", []SubmittedAnswer{{QuestionID: "no-such-word", UserAnswer: "x"}}, completedAt); err == nil {
		t.Error("SubmitResult() with unknown question id should fail")
	}

	// Duplicate quiz ID: grading still returns the result, the save error
	// is surfaced alongside it.
	dupResult, err := svc.SubmitResult(userID, result.QuizID, submitted, completedAt)
	if err == nil {
		t.Error("SubmitResult() with duplicate quiz ID should surface the save failure")
	}
	if dupResult == nil || dupResult.Score != 2 {
		t.Errorf("graded result should be returned despite save failure, got %+v", dupResult)
	}
}

func TestSubmitResultCaseSensitive(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, _, userID := setupQuizTest(t, "test_quiz_case")

	words := catalog.Default().Words()
	wrongCase := []SubmittedAnswer{
		{QuestionID: words[0].ID, UserAnswer: "  " + words[0].Translation + "  "},
	}

	result, err := svc.SubmitResult(userID, "44444444-5555-6666-7777-888888888888", wrongCase, time.Now())
	if err != nil {
		t.Fatalf("SubmitResult() error = %v", err)
	}
	if result.Score != 0 {
		t.Errorf("padded answer graded correct; matching must be exact")
	}
}
