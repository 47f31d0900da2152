package service

import (
	"fmt"

	"contestbot/internal/domain"
	"contestbot/internal/i18n"

	"go.uber.org/zap"
)

// Messenger sends messages through the chat transport
type Messenger interface {
	Send(chatID int64, text string) error
	Forward(chatID, fromChatID int64, messageID int) error
}

// NotifyService tells every operator about a completed submission
type NotifyService struct {
	messenger Messenger
	operators []int64
	logger    *zap.Logger
}

// NewNotifyService creates a notify service for a fixed operator set
func NewNotifyService(messenger Messenger, operators []int64, logger *zap.Logger) *NotifyService {
	return &NotifyService{
		messenger: messenger,
		operators: operators,
		logger:    logger,
	}
}

// SubmissionReceived sends the submission summary to each operator and
// forwards the original video message. Each delivery is independent:
// a failure for one operator is logged and the rest still receive
// theirs. The record is already durable when this runs.
func (s *NotifyService) SubmissionReceived(sub domain.Submission, filename string, fromChatID int64, messageID int) {
	summary := summaryText(sub, filename)

	for _, operatorID := range s.operators {
		if err := s.messenger.Send(operatorID, summary); err != nil {
			s.logger.Warn("Operator notification failed",
				zap.Int64("operator_id", operatorID),
				zap.Int64("user_id", sub.ID),
				zap.Error(err),
			)
			continue
		}
		if err := s.messenger.Forward(operatorID, fromChatID, messageID); err != nil {
			s.logger.Warn("Operator video forward failed",
				zap.Int64("operator_id", operatorID),
				zap.Int64("user_id", sub.ID),
				zap.Error(err),
			)
		}
	}
}

func summaryText(sub domain.Submission, filename string) string {
	return fmt.Sprintf(
		"%s:\n🎓 %s\n📚 %s-bosqich / курс\n👤 %s\n📞 %s\n🆔 %d\n🎥 Fayl / Файл: %s",
		i18n.T(i18n.Lang(sub.Lang), i18n.NewParticipant),
		sub.University,
		sub.Year,
		sub.FullName,
		sub.Phone,
		sub.ID,
		filename,
	)
}
