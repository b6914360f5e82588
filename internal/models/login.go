package models

import "time"

// DateLayout is the calendar-date format used for login-day records.
const DateLayout = "2006-01-02"

// LoginDay records one distinct calendar date on which a user signed in.
// At most one row exists per (user, date) pair; the ledger enforces this
// with an insert-if-absent write.
type LoginDay struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"timestamp"`
}

// DateValue parses the calendar date, truncated to midnight UTC.
// Malformed rows report ok=false and are skipped by the calculators.
func (d LoginDay) DateValue() (time.Time, bool) {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
