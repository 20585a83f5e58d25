package dailystats

import "time"

// DailyStat is the global per-day activity counter, one row per calendar
// date across all users.
type DailyStat struct {
	Date         time.Time `json:"date" gorm:"type:date;primaryKey"`
	MessageCount int64     `json:"message_count" gorm:"not null;default:0"`
}

func (DailyStat) TableName() string {
	return "stats"
}

type StatResponse struct {
	Date         string `json:"date"`
	MessageCount int64  `json:"message_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
