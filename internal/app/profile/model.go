package profile

import "time"

const creditInterval = 100

// UserProfile is the per-user activity row. One row per user, created on the
// first recorded event.
type UserProfile struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	MessageCount int64     `json:"message_count" gorm:"not null;default:0"`
	MutesLeft    int64     `json:"mutes_left" gorm:"not null;default:0"`
	MutesUsed    int64     `json:"mutes_used" gorm:"not null;default:0"`
	Streak       int64     `json:"streak" gorm:"not null;default:0"`
	LastActivity time.Time `json:"last_activity" gorm:"type:date;not null"`
}

func (UserProfile) TableName() string {
	return "users"
}

// Apply evaluates the streak and credit rules against an already incremented
// MessageCount and reports whether anything beyond the count changed.
// Streak branches, keyed on the calendar-day distance to LastActivity:
//   - next day: streak extends by one
//   - same day: streak and LastActivity untouched
//   - any other distance (gap or out-of-order): streak resets to zero
//
// The credit rule is independent of the streak outcome: every
// creditInterval-th message grants one mute.
func (p *UserProfile) Apply(day time.Time) bool {
	changed := false

	switch DaysBetween(p.LastActivity, day) {
	case 0:
		// same day, nothing to move
	case 1:
		p.Streak++
		p.LastActivity = Day(day)
		changed = true
	default:
		p.Streak = 0
		p.LastActivity = Day(day)
		changed = true
	}

	if p.MessageCount%creditInterval == 0 {
		p.MutesLeft++
		changed = true
	}

	return changed
}

// Day truncates an instant to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b. Comparison is at
// day granularity: 23:59 followed by 00:01 the next day is one day apart.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

type ProfileResponse struct {
	ID           int64  `json:"id"`
	MessageCount int64  `json:"message_count"`
	MutesLeft    int64  `json:"mutes_left"`
	MutesUsed    int64  `json:"mutes_used"`
	Streak       int64  `json:"streak"`
	LastActivity string `json:"last_activity"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
