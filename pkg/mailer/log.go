package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender logs outgoing mail instead of delivering it. Used when
// MAIL_SEND_ENABLED=false so local and CI runs never hit Mailgun.
type LogSender struct {
	Logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, text, _ string) error {
	s.Logger.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Infof("mail sending disabled, body: %s", text)
	return nil
}
