package models

import (
	"fmt"
	"strings"
	"time"
)

// Schedule describes a recurring weekly playback slot. Days are stored as a
// comma-separated token string ("mon,wed,fri") and expanded to a list at the
// JSON boundary; order is preserved through the round trip.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime string    `gorm:"size:8;not null" json:"start_time"` // HH:MM:SS
	DayOfWeek string    `gorm:"not null" json:"-"`
	PlayTime  string    `gorm:"size:8;not null" json:"play_time"` // HH:MM:SS
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"last_modified"`
}

var weekdayTokens = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

// EncodeDays joins weekday tokens into the stored form. Tokens are
// lowercased; an empty list or an unknown token is rejected.
func EncodeDays(days []string) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("day_of_week must not be empty")
	}
	normalized := make([]string, len(days))
	for i, d := range days {
		token := strings.ToLower(strings.TrimSpace(d))
		if !weekdayTokens[token] {
			return "", fmt.Errorf("invalid weekday %q", d)
		}
		normalized[i] = token
	}
	return strings.Join(normalized, ","), nil
}

// DecodeDays splits the stored form back into the token list.
func DecodeDays(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	return strings.Split(encoded, ",")
}

// Days exposes the decoded weekday list.
func (s *Schedule) Days() []string {
	return DecodeDays(s.DayOfWeek)
}

// ParseClock validates an HH:MM:SS wall-clock value.
func ParseClock(value string) error {
	if _, err := time.Parse("15:04:05", value); err != nil {
		return fmt.Errorf("invalid time %q, want HH:MM:SS", value)
	}
	return nil
}
