package service

import (
	"errors"
	"testing"
	"time"

	"contestbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

// flakyFetcher fails a configured number of times before succeeding
type flakyFetcher struct {
	failures int
	calls    int
}

func (f *flakyFetcher) Fetch(fileID, dest string) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("network timeout")
	}
	return nil
}

func newTestDownloadService(fetcher Fetcher) (*DownloadService, *[]time.Duration) {
	s := NewDownloadService(fetcher, testutil.NewTestLogger())
	sleeps := &[]time.Duration{}
	s.sleep = func(d time.Duration) {
		*sleeps = append(*sleeps, d)
	}
	return s, sleeps
}

func TestDownloadService_FirstAttemptSucceeds(t *testing.T) {
	fetcher := &flakyFetcher{failures: 0}
	s, sleeps := newTestDownloadService(fetcher)

	err := s.Download("file-1", "videos/out.mp4")

	assert.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Empty(t, *sleeps)
}

func TestDownloadService_SucceedsOnThirdAttempt(t *testing.T) {
	fetcher := &flakyFetcher{failures: 2}
	s, sleeps := newTestDownloadService(fetcher)

	err := s.Download("file-1", "videos/out.mp4")

	assert.NoError(t, err)
	assert.Equal(t, 3, fetcher.calls)
	// One backoff wait after each of the two failures
	assert.Equal(t, []time.Duration{downloadBackoff, downloadBackoff}, *sleeps)
}

func TestDownloadService_ExhaustsAttempts(t *testing.T) {
	fetcher := &flakyFetcher{failures: 100}
	s, _ := newTestDownloadService(fetcher)

	err := s.Download("file-1", "videos/out.mp4")

	assert.Error(t, err)
	assert.Equal(t, downloadAttempts, fetcher.calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestDownloadService_Mock(t *testing.T) {
	mockFetcher := new(testutil.MockFetcher)
	mockFetcher.On("Fetch", "file-9", "videos/dest.mp4").Return(nil)

	s, _ := newTestDownloadService(mockFetcher)

	err := s.Download("file-9", "videos/dest.mp4")

	assert.NoError(t, err)
	mockFetcher.AssertExpectations(t)
}
