package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogSender records messages instead of delivering them. Used when no SMTP
// host is configured, e.g. local development.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("mailer", "log"))}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	s.log.Info("Email (not delivered, SMTP disabled)",
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.HTMLBody)),
	)
	return nil
}
