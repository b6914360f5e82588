package models

import (
	"testing"
	"time"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "future expiration",
			expiresAt: time.Now().Add(1 * time.Hour),
			want:      false,
		},
		{
			name:      "just expired",
			expiresAt: time.Now().Add(-1 * time.Second),
			want:      true,
		},
		{
			name:      "expired yesterday",
			expiresAt: time.Now().Add(-24 * time.Hour),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := Session{
				ID:        "test-session",
				UserID:    1,
				ExpiresAt: tt.expiresAt,
				CreatedAt: time.Now().Add(-1 * time.Hour),
			}
			result := session.IsExpired()
			if result != tt.want {
				t.Errorf("Session.IsExpired() = %v, want %v", result, tt.want)
			}
		})
	}
}

func TestLoginDayDateValue(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		wantOK bool
	}{
		{
			name:   "valid date",
			date:   "2026-08-20",
			wantOK: true,
		},
		{
			name:   "empty date",
			date:   "",
			wantOK: false,
		},
		{
			name:   "timestamp instead of date",
			date:   "2026-08-20T14:30:00Z",
			wantOK: false,
		},
		{
			name:   "garbage",
			date:   "not-a-date",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := LoginDay{Date: tt.date}
			parsed, ok := day.DateValue()
			if ok != tt.wantOK {
				t.Fatalf("DateValue() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && parsed.Format(DateLayout) != tt.date {
				t.Errorf("DateValue() = %v, does not round-trip %q", parsed, tt.date)
			}
		})
	}
}
