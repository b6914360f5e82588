package progress

import (
	"math"
	"sort"
	"time"

	"dailylect/internal/models"
)

// recentQuizLimit is how many attempts the dashboard shows.
const recentQuizLimit = 5

// Compute derives the dashboard summary from a user's quiz results and
// login days. It tolerates empty inputs and never fails; storage problems
// are the caller's concern.
func Compute(results []models.QuizResult, days []models.LoginDay, today time.Time) models.UserProgress {
	return models.UserProgress{
		TotalQuizzesTaken: len(results),
		AverageScore:      averageScore(results),
		BestScore:         bestScore(results),
		TotalWordsLearned: len(LearnedWordIDs(results)),
		CurrentStreak:     CurrentStreak(days, today),
		RecentQuizzes:     recentQuizzes(results),
	}
}

// LearnedWordIDs returns the distinct question (word) IDs the user has ever
// answered correctly, across all quiz attempts. A word answered wrong once
// and right later still counts.
func LearnedWordIDs(results []models.QuizResult) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range results {
		for _, a := range r.Answers {
			if a.IsCorrect && !seen[a.QuestionID] {
				seen[a.QuestionID] = true
				ids = append(ids, a.QuestionID)
			}
		}
	}
	return ids
}

// percentScore converts a result to a 0-100 score rounded to the nearest
// integer. Results with a non-positive question count contribute zero.
func percentScore(r models.QuizResult) int {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.Score) / float64(r.TotalQuestions)))
}

func averageScore(results []models.QuizResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += percentScore(r)
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

func bestScore(results []models.QuizResult) int {
	best := 0
	for _, r := range results {
		if pct := percentScore(r); pct > best {
			best = pct
		}
	}
	return best
}

// recentQuizzes returns up to five results, newest first. The sort is
// stable so attempts sharing a completion instant keep insertion order.
func recentQuizzes(results []models.QuizResult) []models.QuizResult {
	recent := make([]models.QuizResult, len(results))
	copy(recent, results)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CompletedAt.After(recent[j].CompletedAt)
	})
	if len(recent) > recentQuizLimit {
		recent = recent[:recentQuizLimit]
	}
	return recent
}
