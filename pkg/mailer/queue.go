package mailer

import (
	"context"

	"github.com/oksasatya/registration-api/pkg/helpers"
)

// QueueSender publishes rendered emails to a durable RabbitMQ queue
// instead of sending them inline; cmd/email_worker consumes and
// delivers them. Publishing counts as the "send attempt" for the
// caller: a publish error propagates, a successful publish does not
// promise delivery.
type QueueSender struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueSender(pub *helpers.RabbitPublisher) *QueueSender {
	return &QueueSender{Pub: pub}
}

func (s *QueueSender) Send(ctx context.Context, to, subject, text, html string) error {
	return s.Pub.PublishJSON(ctx, EmailJob{To: to, Subject: subject, Text: text, HTML: html})
}
