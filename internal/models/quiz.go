package models

import "time"

// QuizQuestion is a generated multiple-choice question. Questions live only
// for the duration of a quiz session; only the graded result is persisted.
type QuizQuestion struct {
	ID            string   `json:"id"` // equals the word's catalog ID
	Word          Word     `json:"word"`
	Options       []string `json:"options"` // 4 distinct translation strings
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuizAnswer records the outcome of a single question in a completed quiz.
type QuizAnswer struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// QuizResult is one completed quiz attempt. Results are immutable once
// created and append-only per user.
type QuizResult struct {
	QuizID         string       `json:"quizId"`
	UserID         int64        `json:"-"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Answers        []QuizAnswer `json:"answers"`
	CompletedAt    time.Time    `json:"completedAt"`
}
