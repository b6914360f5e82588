package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"dailylect/internal/database"
)

// BackupData represents the complete database backup structure. Sessions
// are ephemeral and deliberately excluded.
type BackupData struct {
	Version      string         `json:"version"`
	ExportedAt   time.Time      `json:"exported_at"`
	DatabaseType string         `json:"database_type"`
	Users        []UserBackup   `json:"users"`
	LoginDays    []LoginBackup  `json:"login_days"`
	Results      []ResultBackup `json:"quiz_results"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	Name          string    `json:"name"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LoginBackup represents one login-ledger day for backup
type LoginBackup struct {
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ResultBackup represents a quiz result and its answers for backup
type ResultBackup struct {
	QuizID         string         `json:"quiz_id"`
	UserID         int64          `json:"user_id"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	CompletedAt    time.Time      `json:"completed_at"`
	Answers        []AnswerBackup `json:"answers"`
}

// AnswerBackup represents a single graded answer for backup
type AnswerBackup struct {
	QuestionID    string `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportLoginDays(backup); err != nil {
		return fmt.Errorf("failed to export login days: %w", err)
	}
	if err := s.exportResults(backup); err != nil {
		return fmt.Errorf("failed to export quiz results: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d login days, %d quiz results",
		len(backup.Users), len(backup.LoginDays), len(backup.Results))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importLoginDays(backup.LoginDays); err != nil {
		return fmt.Errorf("failed to import login days: %w", err)
	}
	if err := s.importResults(backup.Results); err != nil {
		return fmt.Errorf("failed to import quiz results: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := "SELECT id, email, password_hash, name, COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''), created_at, updated_at FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.OAuthProvider, &u.OAuthSubject, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportLoginDays(backup *BackupData) error {
	query := "SELECT user_id, date, created_at FROM login_days ORDER BY user_id, date"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d LoginBackup
		if err := rows.Scan(&d.UserID, &d.Date, &d.CreatedAt); err != nil {
			return err
		}
		backup.LoginDays = append(backup.LoginDays, d)
	}
	return rows.Err()
}

func (s *BackupService) exportResults(backup *BackupData) error {
	query := "SELECT id, user_id, score, total_questions, completed_at FROM quiz_results ORDER BY created_at"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r ResultBackup
		if err := rows.Scan(&r.QuizID, &r.UserID, &r.Score, &r.TotalQuestions, &r.CompletedAt); err != nil {
			return err
		}
		backup.Results = append(backup.Results, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range backup.Results {
		answerQuery := "SELECT question_id, user_answer, correct_answer, is_correct FROM quiz_answers WHERE quiz_result_id = ? ORDER BY id"
		answerRows, err := s.db.Query(answerQuery, backup.Results[i].QuizID)
		if err != nil {
			return err
		}

		for answerRows.Next() {
			var a AnswerBackup
			if err := answerRows.Scan(&a.QuestionID, &a.UserAnswer, &a.CorrectAnswer, &a.IsCorrect); err != nil {
				answerRows.Close()
				return err
			}
			backup.Results[i].Answers = append(backup.Results[i].Answers, a)
		}
		if err := answerRows.Err(); err != nil {
			answerRows.Close()
			return err
		}
		answerRows.Close()
	}

	return nil
}

func (s *BackupService) importUsers(users []UserBackup) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, oauth_provider, oauth_subject, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, u := range users {
		provider := nullableString(u.OAuthProvider)
		subject := nullableString(u.OAuthSubject)
		if _, err := s.db.Exec(query, u.ID, u.Email, u.PasswordHash, u.Name, provider, subject, u.CreatedAt, u.UpdatedAt); err != nil {
			return fmt.Errorf("user %d: %w", u.ID, err)
		}
	}
	log.Printf("Imported %d users", len(users))
	return nil
}

func (s *BackupService) importLoginDays(days []LoginBackup) error {
	query := `
		INSERT INTO login_days (user_id, date)
		VALUES (?, ?)
	`
	imported := 0
	for _, d := range days {
		// Insert-if-absent keeps re-imports of the same backup idempotent.
		inserted, err := s.db.ExecInsertIgnore(query, "user_id, date", d.UserID, d.Date)
		if err != nil {
			return fmt.Errorf("login day %d/%s: %w", d.UserID, d.Date, err)
		}
		if inserted {
			imported++
		}
	}
	log.Printf("Imported %d login days (%d already present)", imported, len(days)-imported)
	return nil
}

func (s *BackupService) importResults(results []ResultBackup) error {
	resultQuery := `
		INSERT INTO quiz_results (id, user_id, score, total_questions, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`
	answerQuery := `
		INSERT INTO quiz_answers (quiz_result_id, question_id, user_answer, correct_answer, is_correct)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, r := range results {
		if _, err := s.db.Exec(resultQuery, r.QuizID, r.UserID, r.Score, r.TotalQuestions, r.CompletedAt); err != nil {
			return fmt.Errorf("result %s: %w", r.QuizID, err)
		}
		for _, a := range r.Answers {
			if _, err := s.db.Exec(answerQuery, r.QuizID, a.QuestionID, a.UserAnswer, a.CorrectAnswer, a.IsCorrect); err != nil {
				return fmt.Errorf("result %s answer %s: %w", r.QuizID, a.QuestionID, err)
			}
		}
	}
	log.Printf("Imported %d quiz results", len(results))
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
