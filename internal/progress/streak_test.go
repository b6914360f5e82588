package progress

import (
	"testing"
	"time"

	"dailylect/internal/models"
)

var testToday = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

func loginDaysOn(dates ...string) []models.LoginDay {
	days := make([]models.LoginDay, len(dates))
	for i, d := range dates {
		days[i] = models.LoginDay{Date: d}
	}
	return days
}

// daysAgo formats a date n calendar days before the test "today".
func daysAgo(n int) string {
	return testToday.AddDate(0, 0, -n).Format(models.DateLayout)
}

func TestLoginDayCount(t *testing.T) {
	tests := []struct {
		name string
		days []models.LoginDay
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "three days", days: loginDaysOn(daysAgo(0), daysAgo(1), daysAgo(2)), want: 3},
		{name: "duplicates collapse", days: loginDaysOn(daysAgo(0), daysAgo(0), daysAgo(1)), want: 2},
		{name: "malformed date skipped", days: loginDaysOn(daysAgo(0), "not-a-date"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoginDayCount(tt.days); got != tt.want {
				t.Errorf("LoginDayCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuizAccess(t *testing.T) {
	tests := []struct {
		name          string
		dayCount      int
		wantAccess    bool
		wantRemaining int
	}{
		{name: "no logins", dayCount: 0, wantAccess: false, wantRemaining: 7},
		{name: "six days", dayCount: 6, wantAccess: false, wantRemaining: 1},
		{name: "exactly seven", dayCount: 7, wantAccess: true, wantRemaining: 0},
		{name: "beyond seven", dayCount: 12, wantAccess: true, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Non-consecutive dates: access depends on total distinct days,
			// not on consecutiveness.
			var days []models.LoginDay
			for i := 0; i < tt.dayCount; i++ {
				days = append(days, models.LoginDay{Date: daysAgo(i * 3)})
			}

			if got := HasQuizAccess(days); got != tt.wantAccess {
				t.Errorf("HasQuizAccess() = %v, want %v", got, tt.wantAccess)
			}
			if got := DaysUntilAccess(days); got != tt.wantRemaining {
				t.Errorf("DaysUntilAccess() = %d, want %d", got, tt.wantRemaining)
			}

			// DaysUntilAccess is zero exactly when access is granted.
			if (DaysUntilAccess(days) == 0) != HasQuizAccess(days) {
				t.Error("DaysUntilAccess() == 0 must coincide with HasQuizAccess()")
			}
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		days []models.LoginDay
		want int
	}{
		{
			name: "empty set",
			days: nil,
			want: 0,
		},
		{
			name: "three consecutive days ending today",
			days: loginDaysOn(daysAgo(0), daysAgo(1), daysAgo(2)),
			want: 3,
		},
		{
			name: "gap resets the run",
			days: loginDaysOn(daysAgo(0), daysAgo(2)),
			want: 1,
		},
		{
			name: "run anchored at yesterday still active",
			days: loginDaysOn(daysAgo(1), daysAgo(2), daysAgo(3)),
			want: 3,
		},
		{
			name: "last login two days ago is broken",
			days: loginDaysOn(daysAgo(2), daysAgo(3)),
			want: 0,
		},
		{
			name: "single login today",
			days: loginDaysOn(daysAgo(0)),
			want: 1,
		},
		{
			name: "unsorted input",
			days: loginDaysOn(daysAgo(2), daysAgo(0), daysAgo(1)),
			want: 3,
		},
		{
			name: "duplicate dates do not inflate the run",
			days: loginDaysOn(daysAgo(0), daysAgo(0), daysAgo(1)),
			want: 2,
		},
		{
			name: "long run stops at first gap",
			days: loginDaysOn(daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(4), daysAgo(5)),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.days, testToday); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAccessIndependentOfStreak(t *testing.T) {
	// Seven distinct but non-consecutive dates: access granted even though
	// the streak is short.
	days := loginDaysOn(
		daysAgo(0), daysAgo(2), daysAgo(4), daysAgo(6),
		daysAgo(8), daysAgo(10), daysAgo(12),
	)

	if !HasQuizAccess(days) {
		t.Error("seven distinct days should grant quiz access")
	}
	if streak := CurrentStreak(days, testToday); streak >= 7 {
		t.Errorf("streak = %d, expected less than 7 for non-consecutive days", streak)
	}
}
