package handler

import (
	"path/filepath"
	"strings"
	"time"

	"contestbot/internal/domain"
	"contestbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxVideoSize is the largest media item accepted for the contest
const maxVideoSize = 200 << 20 // 200 MiB

// handleVideo handles the terminal intake step: it acquires the video,
// appends the registry record, notifies operators and ends the session.
// Any failure keeps the session at the video step so the user can resend.
func (h *Handler) handleVideo(c tele.Context) error {
	userID := c.Sender().ID

	sess, ok := h.sessions.Get(userID)
	if !ok || sess.State != domain.StateVideo {
		return nil
	}

	lang := i18n.Normalize(sess.Lang)

	fileID, size, ok := videoAsset(c.Message())
	if !ok {
		return c.Send(i18n.T(lang, i18n.InvalidVideo))
	}

	// Oversize media is rejected before any fetch attempt
	if size > maxVideoSize {
		return c.Send(i18n.T(lang, i18n.TooLarge))
	}

	if err := c.Send(i18n.T(lang, i18n.Downloading)); err != nil {
		h.logger.Warn("Failed to send progress message", zap.Error(err))
	}

	now := time.Now().In(h.location)
	filename := domain.VideoFilename(sess.FullName, userID, now)
	path := filepath.Join(h.videosDir, filename)

	if err := h.downloads.Download(fileID, path); err != nil {
		h.logger.Error("Video download failed",
			zap.Int64("user_id", userID),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		return c.Send(i18n.T(lang, i18n.DownloadError))
	}

	sub := domain.Submission{
		ID:          userID,
		Timestamp:   now,
		Lang:        string(lang),
		University:  sess.University,
		Year:        sess.Year,
		FullName:    sess.FullName,
		Phone:       sess.Phone,
		VideoFileID: fileID,
		VideoPath:   path,
	}

	if err := h.registry.Append(sub); err != nil {
		h.logger.Error("Failed to append submission record",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(i18n.T(lang, i18n.SomethingWrong))
	}

	h.logger.Info("Submission recorded",
		zap.Int64("user_id", userID),
		zap.String("video_path", path),
	)

	if err := c.Send(i18n.T(lang, i18n.Done)); err != nil {
		h.logger.Warn("Failed to send completion message", zap.Error(err))
	}

	h.notify.SubmissionReceived(sub, filename, c.Chat().ID, c.Message().ID)
	h.sessions.End(userID)
	return nil
}

// videoAsset extracts the transport file reference and size from a
// video message or a video document attachment
func videoAsset(m *tele.Message) (fileID string, size int64, ok bool) {
	if m == nil {
		return "", 0, false
	}
	if m.Video != nil {
		return m.Video.FileID, m.Video.FileSize, true
	}
	if m.Document != nil && strings.HasPrefix(m.Document.MIME, "video/") {
		return m.Document.FileID, m.Document.FileSize, true
	}
	return "", 0, false
}
