package service

import (
	"time"

	"contestbot/internal/repository"

	"go.uber.org/zap"
)

const broadcastThrottle = 50 * time.Millisecond

// AdminService implements the operator-only commands over the registry
type AdminService struct {
	registry  repository.Registry
	messenger Messenger
	operators map[int64]struct{}
	logger    *zap.Logger

	throttle time.Duration
	sleep    func(time.Duration)
}

// NewAdminService creates an admin service gated by the operator allow-list
func NewAdminService(registry repository.Registry, messenger Messenger, operators []int64, logger *zap.Logger) *AdminService {
	set := make(map[int64]struct{}, len(operators))
	for _, id := range operators {
		set[id] = struct{}{}
	}
	return &AdminService{
		registry:  registry,
		messenger: messenger,
		operators: set,
		logger:    logger,
		throttle:  broadcastThrottle,
		sleep:     time.Sleep,
	}
}

// IsOperator reports whether userID is on the operator allow-list
func (s *AdminService) IsOperator(userID int64) bool {
	_, ok := s.operators[userID]
	return ok
}

// Count returns the number of submission records in the registry
func (s *AdminService) Count() (int, error) {
	subs, err := s.registry.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(subs), nil
}

// Broadcast sends text to the stored id of every registry record,
// counting successes and failures independently. Duplicate ids receive
// duplicate sends; the registry is a log, not a keyed table. A short
// pause between sends keeps the transport's rate limiter happy.
func (s *AdminService) Broadcast(text string) (sent, failed int, err error) {
	subs, err := s.registry.LoadAll()
	if err != nil {
		return 0, 0, err
	}

	for _, sub := range subs {
		if sendErr := s.messenger.Send(sub.ID, text); sendErr != nil {
			failed++
			s.logger.Warn("Broadcast send failed",
				zap.Int64("user_id", sub.ID),
				zap.Error(sendErr),
			)
			continue
		}
		sent++
		s.sleep(s.throttle)
	}

	s.logger.Info("Broadcast finished",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return sent, failed, nil
}
