package repository

import (
	"time"

	"dailylect/internal/database"
	"dailylect/internal/models"
)

// LoginRepository is the login ledger: one row per user per distinct
// calendar date. Rows are never mutated or deleted.
type LoginRepository struct {
	db *database.DB
}

// NewLoginRepository creates a new login repository
func NewLoginRepository(db *database.DB) *LoginRepository {
	return &LoginRepository{db: db}
}

// RecordLogin inserts a login day for the given date if none exists yet.
// Safe to call any number of times per day; the write is insert-if-absent
// on the (user_id, date) unique key. Returns whether a new row was written.
func (r *LoginRepository) RecordLogin(userID int64, date time.Time) (bool, error) {
	query := `
		INSERT INTO login_days (user_id, date)
		VALUES (?, ?)
	`

	day := date.UTC().Format(models.DateLayout)
	inserted, err := r.db.ExecInsertIgnore(query, "user_id, date", userID, day)
	if err != nil {
		return false, storageErr("record login", err)
	}

	return inserted, nil
}

// ListLoginDays retrieves all login days for a user. No ordering is
// guaranteed; the calculators sort what they need.
func (r *LoginRepository) ListLoginDays(userID int64) ([]models.LoginDay, error) {
	query := `
		SELECT id, user_id, date, created_at
		FROM login_days
		WHERE user_id = ?
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, storageErr("list login days", err)
	}
	defer rows.Close()

	var days []models.LoginDay
	for rows.Next() {
		var day models.LoginDay
		err := rows.Scan(
			&day.ID,
			&day.UserID,
			&day.Date,
			&day.CreatedAt,
		)
		if err != nil {
			return nil, storageErr("scan login day", err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list login days", err)
	}
	return days, nil
}

// CountLoginDays returns the number of distinct login days for a user.
func (r *LoginRepository) CountLoginDays(userID int64) (int, error) {
	query := "SELECT COUNT(*) FROM login_days WHERE user_id = ?"

	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, storageErr("count login days", err)
	}
	return count, nil
}
