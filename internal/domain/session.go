package domain

import "time"

// FlowState identifies the step a user is at in the intake flow
type FlowState string

const (
	StateLanguage   FlowState = "awaiting_language"
	StateUniversity FlowState = "awaiting_university"
	StateYear       FlowState = "awaiting_year"
	StateFullName   FlowState = "awaiting_fullname"
	StatePhone      FlowState = "awaiting_phone"
	StateVideo      FlowState = "awaiting_video"
)

// Session holds the in-progress answers of one user's intake flow.
// It exists from /start until the video is accepted.
type Session struct {
	UserID     int64
	ChatID     int64
	State      FlowState
	Lang       string
	University string
	Year       string
	FullName   string
	Phone      string
	UpdatedAt  time.Time
}
