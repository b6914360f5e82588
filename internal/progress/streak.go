package progress

import (
	"sort"
	"time"

	"dailylect/internal/models"
)

// QuizAccessDays is the number of distinct login days required before the
// quiz unlocks.
const QuizAccessDays = 7

// LoginDayCount returns the number of distinct calendar dates in the set.
// The ledger writes one row per date, but the count deduplicates anyway so
// merged multi-device sets stay correct.
func LoginDayCount(days []models.LoginDay) int {
	return len(distinctDates(days))
}

// HasQuizAccess reports whether the user has reached the login-day threshold.
func HasQuizAccess(days []models.LoginDay) bool {
	return LoginDayCount(days) >= QuizAccessDays
}

// DaysUntilAccess returns how many more distinct login days are needed
// before the quiz unlocks, never negative.
func DaysUntilAccess(days []models.LoginDay) int {
	remaining := QuizAccessDays - LoginDayCount(days)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CurrentStreak counts consecutive login days anchored at the most recent
// login. The streak is tolerant of "not yet logged in today": a run ending
// yesterday still counts until a full day is skipped. A most recent login
// more than one day before today means the streak is broken.
func CurrentStreak(days []models.LoginDay, today time.Time) int {
	dates := distinctDates(days)
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	day := today.UTC()
	anchor := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if dates[0].Before(anchor.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// distinctDates materializes the parseable dates in the set, deduplicated.
func distinctDates(days []models.LoginDay) []time.Time {
	seen := make(map[string]bool, len(days))
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		if seen[d.Date] {
			continue
		}
		t, ok := d.DateValue()
		if !ok {
			continue
		}
		seen[d.Date] = true
		dates = append(dates, t)
	}
	return dates
}
