package repository

import (
	"dailylect/internal/database"
	"dailylect/internal/models"
)

// ResultRepository is the quiz result store. Results are append-only and
// immutable once written; the caller supplies the quiz ID.
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveResult persists a completed quiz attempt and its per-question answers
// in one transaction. It never overwrites an existing result.
func (r *ResultRepository) SaveResult(result *models.QuizResult) error {
	tx, err := r.db.Begin()
	if err != nil {
		return storageErr("save result", err)
	}
	defer tx.Rollback()

	resultQuery := `
		INSERT INTO quiz_results (id, user_id, score, total_questions, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(resultQuery,
		result.QuizID,
		result.UserID,
		result.Score,
		result.TotalQuestions,
		result.CompletedAt,
	)
	if err != nil {
		return storageErr("save result", err)
	}

	answerQuery := `
		INSERT INTO quiz_answers (quiz_result_id, question_id, user_answer, correct_answer, is_correct)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, a := range result.Answers {
		_, err = tx.Exec(answerQuery,
			result.QuizID,
			a.QuestionID,
			a.UserAnswer,
			a.CorrectAnswer,
			a.IsCorrect,
		)
		if err != nil {
			return storageErr("save answer", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("save result", err)
	}
	return nil
}

// ListResults retrieves all quiz results for a user with their answers.
// Rows come back in insertion order; callers needing recency sort by
// CompletedAt themselves.
func (r *ResultRepository) ListResults(userID int64) ([]models.QuizResult, error) {
	query := `
		SELECT id, user_id, score, total_questions, completed_at
		FROM quiz_results
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, storageErr("list results", err)
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var result models.QuizResult
		err := rows.Scan(
			&result.QuizID,
			&result.UserID,
			&result.Score,
			&result.TotalQuestions,
			&result.CompletedAt,
		)
		if err != nil {
			return nil, storageErr("scan result", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list results", err)
	}

	for i := range results {
		answers, err := r.listAnswers(results[i].QuizID)
		if err != nil {
			return nil, err
		}
		results[i].Answers = answers
	}

	return results, nil
}

// listAnswers loads the per-question answers for one result.
func (r *ResultRepository) listAnswers(quizID string) ([]models.QuizAnswer, error) {
	query := `
		SELECT question_id, user_answer, correct_answer, is_correct
		FROM quiz_answers
		WHERE quiz_result_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, quizID)
	if err != nil {
		return nil, storageErr("list answers", err)
	}
	defer rows.Close()

	var answers []models.QuizAnswer
	for rows.Next() {
		var a models.QuizAnswer
		err := rows.Scan(
			&a.QuestionID,
			&a.UserAnswer,
			&a.CorrectAnswer,
			&a.IsCorrect,
		)
		if err != nil {
			return nil, storageErr("scan answer", err)
		}
		answers = append(answers, a)
	}

	return answers, rows.Err()
}
