package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/event"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
)

type accountRepoMock struct{ mock.Mock }

func (m *accountRepoMock) FindByID(ctx context.Context, id valueobject.AccountID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *accountRepoMock) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.Account, error) {
	args := m.Called(ctx, email)
	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *accountRepoMock) Save(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type activationRepoMock struct{ mock.Mock }

func (m *activationRepoMock) FindByAccountID(ctx context.Context, id valueobject.AccountID) (*entity.AccountActivation, error) {
	args := m.Called(ctx, id)
	var activation *entity.AccountActivation
	if v := args.Get(0); v != nil {
		activation = v.(*entity.AccountActivation)
	}
	return activation, args.Error(1)
}

func (m *activationRepoMock) Save(ctx context.Context, activation *entity.AccountActivation) error {
	args := m.Called(ctx, activation)
	return args.Error(0)
}

type dispatcherMock struct{ mock.Mock }

func (m *dispatcherMock) Register(name string, handler event.Handler) {
	m.Called(name, handler)
}

func (m *dispatcherMock) Dispatch(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type mailSenderMock struct{ mock.Mock }

func (m *mailSenderMock) Send(ctx context.Context, to, subject, text, html string) error {
	args := m.Called(ctx, to, subject, text, html)
	return args.Error(0)
}

type indexerMock struct{ mock.Mock }

func (m *indexerMock) Index(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
