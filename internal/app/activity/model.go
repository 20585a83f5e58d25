package activity

import "time"

// EventActivityRecorded is published on the event bus after both trackers
// accepted an event.
const EventActivityRecorded = "activity_recorded"

type RecordActivityRequest struct {
	UserID     int64      `json:"user_id" binding:"required"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

type RecordActivityResponse struct {
	UserID int64  `json:"user_id"`
	Date   string `json:"date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
