package models

// UserProgress is the derived dashboard summary. It is computed on demand
// from a user's login days and quiz results and never stored.
type UserProgress struct {
	TotalQuizzesTaken int          `json:"totalQuizzesTaken"`
	AverageScore      int          `json:"averageScore"`
	BestScore         int          `json:"bestScore"`
	TotalWordsLearned int          `json:"totalWordsLearned"`
	CurrentStreak     int          `json:"currentStreak"`
	RecentQuizzes     []QuizResult `json:"recentQuizzes"`
}

// QuizAccess reports whether the seven-day quiz gate is open for a user.
type QuizAccess struct {
	HasAccess     bool `json:"hasAccess"`
	LoginDays     int  `json:"loginDays"`
	DaysRemaining int  `json:"daysRemaining"`
}
