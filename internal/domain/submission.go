package domain

import (
	"fmt"
	"strings"
	"time"
)

// Submission is one completed contest entry. Field names match the
// registry document format.
type Submission struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"ts"`
	Lang        string    `json:"lang"`
	University  string    `json:"university"`
	Year        string    `json:"year"`
	FullName    string    `json:"fullname"`
	Phone       string    `json:"phone"`
	VideoFileID string    `json:"video_file_id"`
	VideoPath   string    `json:"video_path"`
}

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// SanitizeName makes a full name safe for use in a filename
func SanitizeName(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "unknown"
	}
	return nameReplacer.Replace(name)
}

// VideoFilename builds the storage filename for a contest video
func VideoFilename(fullName string, userID int64, ts time.Time) string {
	return fmt.Sprintf("%s_%d_%s.mp4", SanitizeName(fullName), userID, ts.Format("20060102_150405"))
}
