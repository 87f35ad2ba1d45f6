package application

import (
	"context"

	"github.com/oksasatya/registration-api/internal/domain/entity"
)

// MailSender delivers a single email. Implementations may send directly
// (Mailgun) or publish a durable job for a worker to deliver; either
// way a send error must be reported to the caller.
type MailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// AccountIndexer mirrors account state into a search index. All call
// sites treat indexing as best-effort: failures are logged, never
// surfaced to the workflow.
type AccountIndexer interface {
	Index(ctx context.Context, account *entity.Account) error
}
