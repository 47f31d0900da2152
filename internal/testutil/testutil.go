package testutil

import (
	"time"

	"contestbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSubmission creates a fully populated submission record
func NewTestSubmission(userID int64, fullName string) domain.Submission {
	return domain.Submission{
		ID:          userID,
		Timestamp:   time.Date(2025, 10, 31, 12, 0, 0, 0, time.UTC),
		Lang:        "uz",
		University:  "TDIU",
		Year:        "2",
		FullName:    fullName,
		Phone:       "+998901234567",
		VideoFileID: "file-abc",
		VideoPath:   "videos/test.mp4",
	}
}
