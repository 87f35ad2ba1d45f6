package router

import (
	accountapp "github.com/oksasatya/registration-api/internal/application"
	"github.com/oksasatya/registration-api/internal/container"
	"github.com/oksasatya/registration-api/internal/domain/event"
	pginfra "github.com/oksasatya/registration-api/internal/infrastructure/postgres"
	"github.com/oksasatya/registration-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/registration-api/internal/interface/http"
	"github.com/oksasatya/registration-api/internal/router/modules"
	"github.com/oksasatya/registration-api/pkg/mailer"
)

type AccountModuleDeps struct {
	Handler *handlers.AccountHandler
}

// mailSender picks the delivery path from config:
// - "queue": publish pre-rendered jobs to RabbitMQ, a worker sends them
// - "direct" (default): call Mailgun inline
// MAIL_SEND_ENABLED=false overrides both and logs instead.
func mailSender() accountapp.MailSender {
	cfg := container.GetConfig()
	if !cfg.MailSendEnabled {
		return mailer.NewLogSender(container.GetLogger())
	}
	if cfg.MailDelivery == "queue" && container.GetRabbitPub() != nil {
		return mailer.NewQueueSender(container.GetRabbitPub())
	}
	return container.GetMailgun()
}

func buildAccountDeps() AccountModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	accounts := pginfra.NewAccountRepository(container.GetPGPool())
	activations := pginfra.NewAccountActivationRepository(container.GetPGPool())

	var indexer accountapp.AccountIndexer
	if es := container.GetES(); es != nil {
		indexer = search.NewESAccountIndexer(es, cfg.ESAccountsIndex)
	}

	dispatcher := container.GetDispatcher()
	dispatcher.Register(event.AccountCreatedName, accountapp.NewAccountCreatedHandler(
		activations,
		mailSender(),
		cfg.ActivationBaseURL,
		cfg.AppName,
		logger,
	))

	register := accountapp.NewRegisterAccountHandler(accounts, dispatcher, indexer, logger)
	activate := accountapp.NewActivateAccountHandler(accounts, activations, indexer, logger)

	return AccountModuleDeps{
		Handler: handlers.NewAccountHandler(register, activate, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	accountDeps := buildAccountDeps()
	r.Add(modules.NewAccountModule(r.Engine, accountDeps.Handler))
	r.Add(modules.NewHealthModule(r.Engine, handlers.NewHealthHandler()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
