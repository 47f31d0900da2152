package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"contestbot/internal/domain"

	"go.uber.org/zap"
)

// Registry persists submissions as a single indented JSON array on disk.
// Every append rewrites the whole document, so all access is serialized
// behind a mutex to keep concurrent completions from losing records.
type Registry struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

// New creates the parent directory for path if needed and returns a
// file-backed registry
func New(path string, logger *zap.Logger) (*Registry, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create registry directory: %w", err)
		}
	}
	return &Registry{path: path, logger: logger}, nil
}

// LoadAll returns every submission in insertion order. A missing file
// yields an empty registry.
func (r *Registry) LoadAll() ([]domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// Append reloads the registry, appends rec and rewrites the document
func (r *Registry) Append(rec domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.loadLocked()
	if err != nil {
		return err
	}
	subs = append(subs, rec)

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}

func (r *Registry) loadLocked() ([]domain.Submission, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Submission{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var subs []domain.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		r.quarantineLocked(err)
		return []domain.Submission{}, nil
	}
	return subs, nil
}

// quarantineLocked moves an unreadable registry file aside so the next
// rewrite does not destroy whatever records it still holds.
func (r *Registry) quarantineLocked(parseErr error) {
	backup := fmt.Sprintf("%s.corrupt.%d", r.path, time.Now().Unix())
	if err := os.Rename(r.path, backup); err != nil {
		r.logger.Error("Failed to back up corrupt registry",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return
	}
	r.logger.Error("Registry file is corrupt, starting empty",
		zap.String("path", r.path),
		zap.String("backup", backup),
		zap.Error(parseErr),
	)
}
