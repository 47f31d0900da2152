package service

import (
	"sync"
	"time"

	"contestbot/internal/domain"

	"go.uber.org/zap"
)

// SessionStore owns the ephemeral per-user intake sessions
// (in-memory state machine)
type SessionStore struct {
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore(logger *zap.Logger) *SessionStore {
	return &SessionStore{
		logger:   logger,
		now:      time.Now,
		sessions: make(map[int64]*domain.Session),
	}
}

// Begin starts a fresh session at the language step, discarding any
// in-progress session for the same user. No partial record survives
// a restart.
func (s *SessionStore) Begin(userID, chatID int64) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[userID]; exists {
		s.logger.Info("Discarding in-progress session on restart",
			zap.Int64("user_id", userID),
		)
	}

	sess := &domain.Session{
		UserID:    userID,
		ChatID:    chatID,
		State:     domain.StateLanguage,
		UpdatedAt: s.now(),
	}
	s.sessions[userID] = sess
	return sess
}

// Get returns the active session for a user, if any
func (s *SessionStore) Get(userID int64) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	return sess, ok
}

// Update stores sess and stamps its activity time
func (s *SessionStore) Update(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.UpdatedAt = s.now()
	s.sessions[sess.UserID] = sess
}

// End destroys the session for a user
func (s *SessionStore) End(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// Len returns the number of active sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Sweep evicts sessions idle for longer than ttl and returns how many
// were removed. Abandoned flows would otherwise live forever.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	evicted := 0
	for userID, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}
	return evicted
}
