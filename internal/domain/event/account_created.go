package event

import (
	"time"

	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

// AccountCreatedName identifies the AccountCreated event.
const AccountCreatedName = "account.created"

// AccountCreated is emitted exactly once per successful registration,
// after the account row is persisted. Consumed synchronously by the
// activation-code workflow.
type AccountCreated struct {
	AccountID  valueobject.AccountID
	Email      valueobject.Email
	OccurredAt time.Time
}

func (AccountCreated) Name() string { return AccountCreatedName }
