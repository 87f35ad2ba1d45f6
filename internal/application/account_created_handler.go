package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/event"
	repo "github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/pkg/helpers"
	mailtpl "github.com/oksasatya/registration-api/pkg/mailer/templates"
)

// AccountCreatedHandler reacts to AccountCreated: it generates a
// one-time activation code and emails it to the new account.
//
// The code is persisted before any email attempt, so a user can never
// receive a code that is not yet queryable. No retry and no
// compensation here: a failed send still leaves a usable code behind,
// and the error propagates to the synchronous dispatcher's caller.
type AccountCreatedHandler struct {
	Activations repo.AccountActivationRepository
	Mail        MailSender
	BaseURL     string
	AppName     string
	Logger      *logrus.Logger
}

func NewAccountCreatedHandler(activations repo.AccountActivationRepository, mail MailSender, baseURL, appName string, logger *logrus.Logger) *AccountCreatedHandler {
	return &AccountCreatedHandler{Activations: activations, Mail: mail, BaseURL: baseURL, AppName: appName, Logger: logger}
}

func (h *AccountCreatedHandler) Handle(ctx context.Context, e event.Event) error {
	created, ok := e.(event.AccountCreated)
	if !ok {
		return fmt.Errorf("account created handler: unexpected event %q", e.Name())
	}

	activation, err := entity.NewAccountActivation(created.AccountID)
	if err != nil {
		return err
	}

	if err := h.Activations.Save(ctx, activation); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/activate/%s?code=%s",
		strings.TrimRight(h.BaseURL, "/"),
		created.AccountID.String(),
		activation.Code().String(),
	)

	subject, text, html, err := mailtpl.RenderActivation(mailtpl.ActivationData{
		AppName:          h.AppName,
		Email:            created.Email.String(),
		ActivationLink:   link,
		Code:             activation.Code().String(),
		ExpiresInSeconds: int(entity.ActivationTTL.Seconds()),
		ExpiresAt:        activation.ExpiresAt(),
	})
	if err != nil {
		return err
	}

	if h.Logger != nil {
		helpers.LogInfo(h.Logger, "activation code issued", logrus.Fields{
			"account_id": created.AccountID.String(),
			"to":         created.Email.String(),
		})
	}

	return h.Mail.Send(ctx, created.Email.String(), subject, text, html)
}
