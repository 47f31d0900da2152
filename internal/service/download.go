package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Fetcher downloads a remote file by its transport identifier
type Fetcher interface {
	Fetch(fileID, dest string) error
}

const (
	downloadAttempts = 3
	downloadBackoff  = 3 * time.Second
)

// DownloadService fetches contest videos into local storage,
// retrying transient failures with a fixed backoff
type DownloadService struct {
	fetcher Fetcher
	logger  *zap.Logger

	attempts int
	backoff  time.Duration
	sleep    func(time.Duration)
}

// NewDownloadService creates a download service with the default retry budget
func NewDownloadService(fetcher Fetcher, logger *zap.Logger) *DownloadService {
	return &DownloadService{
		fetcher:  fetcher,
		logger:   logger,
		attempts: downloadAttempts,
		backoff:  downloadBackoff,
		sleep:    time.Sleep,
	}
}

// Download fetches fileID into dest. It tries up to the attempt budget,
// waiting the backoff interval between failures, and returns the last
// error once the budget is exhausted.
func (s *DownloadService) Download(fileID, dest string) error {
	var lastErr error

	for attempt := 1; attempt <= s.attempts; attempt++ {
		err := s.fetcher.Fetch(fileID, dest)
		if err == nil {
			return nil
		}

		lastErr = err
		s.logger.Warn("Video download attempt failed",
			zap.Int("attempt", attempt),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		if attempt < s.attempts {
			s.sleep(s.backoff)
		}
	}

	s.logger.Error("Video download failed after all attempts",
		zap.Int("attempts", s.attempts),
		zap.String("file_id", fileID),
		zap.Error(lastErr),
	)
	return fmt.Errorf("failed to download %s after %d attempts: %w", fileID, s.attempts, lastErr)
}
