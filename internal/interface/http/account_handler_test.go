package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountapp "github.com/oksasatya/registration-api/internal/application"
	"github.com/oksasatya/registration-api/internal/domain/entity"
	"github.com/oksasatya/registration-api/internal/domain/event"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
	"github.com/oksasatya/registration-api/internal/infrastructure/events"
	"github.com/oksasatya/registration-api/internal/interface/middleware"
	"github.com/oksasatya/registration-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type memAccounts struct {
	byID map[string]*entity.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[string]*entity.Account{}}
}

func (m *memAccounts) FindByID(_ context.Context, id valueobject.AccountID) (*entity.Account, error) {
	return m.byID[id.String()], nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email valueobject.Email) (*entity.Account, error) {
	for _, a := range m.byID {
		if a.Email().Equal(email) {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) Save(_ context.Context, account *entity.Account) error {
	m.byID[account.ID().String()] = account
	return nil
}

type memActivations struct {
	byAccount map[string]*entity.AccountActivation
}

func newMemActivations() *memActivations {
	return &memActivations{byAccount: map[string]*entity.AccountActivation{}}
}

func (m *memActivations) FindByAccountID(_ context.Context, id valueobject.AccountID) (*entity.AccountActivation, error) {
	return m.byAccount[id.String()], nil
}

func (m *memActivations) Save(_ context.Context, activation *entity.AccountActivation) error {
	m.byAccount[activation.AccountID().String()] = activation
	return nil
}

type recordedMail struct {
	To      string
	Subject string
	Text    string
}

type memMail struct {
	sent []recordedMail
}

func (m *memMail) Send(_ context.Context, to, subject, text, _ string) error {
	m.sent = append(m.sent, recordedMail{To: to, Subject: subject, Text: text})
	return nil
}

type testEnv struct {
	router      *gin.Engine
	accounts    *memAccounts
	activations *memActivations
	mail        *memMail
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := logrus.New()

	accounts := newMemAccounts()
	activations := newMemActivations()
	mail := &memMail{}

	dispatcher := events.NewInMemoryDispatcher(logger)
	dispatcher.Register(event.AccountCreatedName, accountapp.NewAccountCreatedHandler(
		activations, mail, "http://localhost:8080", "registration-api", logger,
	))

	h := NewAccountHandler(
		accountapp.NewRegisterAccountHandler(accounts, dispatcher, nil, logger),
		accountapp.NewActivateAccountHandler(accounts, activations, nil, logger),
		logger,
	)

	r := gin.New()
	r.POST("/api/accounts", h.RegisterAccount)
	activate := r.Group("/activate")
	activate.Use(middleware.BasicAuth("api", "secret"))
	{
		activate.GET("/:account_id", h.ActivateAccount)
		activate.POST("/:account_id", h.ActivateAccount)
	}

	return &testEnv{router: r, accounts: accounts, activations: activations, mail: mail}
}

func (e *testEnv) register(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) activate(t *testing.T, accountID, code string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/activate/"+accountID+"?code="+code, nil)
	if withAuth {
		req.SetBasicAuth("api", "secret")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterAccount_Created(t *testing.T) {
	env := newTestEnv(t)

	w := env.register(t, `{"email":"alice@example.com","password":"password123"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	out := decodeEnvelope(t, w)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]any)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.Equal(t, false, data["is_activated"])

	// Registration emits the activation email synchronously.
	require.Len(t, env.mail.sent, 1)
	assert.Equal(t, "alice@example.com", env.mail.sent[0].To)
	assert.Len(t, env.activations.byAccount, 1)
}

func TestRegisterAccount_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.register(t, `{"email":"  Alice@Example.COM ","password":"password123"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "alice@example.com", data["email"])
}

func TestRegisterAccount_InvalidPayload(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password123"}`},
		{"bad email", `{"email":"nope","password":"password123"}`},
		{"short password", `{"email":"alice@example.com","password":"1234567"}`},
		{"not json", `email=alice`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.register(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterAccount_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, `{"email":"alice@example.com","password":"password123"}`).Code)
	w := env.register(t, `{"email":"alice@example.com","password":"otherpassword"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}

func registeredAccount(t *testing.T, env *testEnv) (string, string) {
	t.Helper()
	w := env.register(t, `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	id := data["id"].(string)
	code := env.activations.byAccount[id].Code().String()
	return id, code
}

func TestActivateAccount_Success(t *testing.T) {
	env := newTestEnv(t)
	id, code := registeredAccount(t, env)

	w := env.activate(t, id, code, true)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["is_activated"])

	account, err := env.accounts.FindByID(context.Background(), mustAccountID(t, id))
	require.NoError(t, err)
	assert.True(t, account.IsActivated())
}

func TestActivateAccount_SecondAttemptStillOK(t *testing.T) {
	env := newTestEnv(t)
	id, code := registeredAccount(t, env)

	require.Equal(t, http.StatusOK, env.activate(t, id, code, true).Code)
	assert.Equal(t, http.StatusOK, env.activate(t, id, code, true).Code)
}

func TestActivateAccount_WrongCode(t *testing.T) {
	env := newTestEnv(t)
	id, code := registeredAccount(t, env)

	wrong := "0000"
	if wrong == code {
		wrong = "0001"
	}
	w := env.activate(t, id, wrong, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivateAccount_MalformedCode(t *testing.T) {
	env := newTestEnv(t)
	id, _ := registeredAccount(t, env)

	for _, bad := range []string{"", "123", "12345", "12a4"} {
		w := env.activate(t, id, bad, true)
		assert.Equal(t, http.StatusBadRequest, w.Code, "code %q", bad)
	}
}

func TestActivateAccount_ExpiredCode(t *testing.T) {
	env := newTestEnv(t)
	id, code := registeredAccount(t, env)

	// Age the stored activation past its window.
	live := env.activations.byAccount[id]
	created := time.Now().UTC().Add(-2 * entity.ActivationTTL)
	env.activations.byAccount[id] = entity.RehydrateAccountActivation(
		live.AccountID(), live.Code(), created, created.Add(entity.ActivationTTL),
	)

	w := env.activate(t, id, code, true)
	assert.Equal(t, http.StatusGone, w.Code)

	account, err := env.accounts.FindByID(context.Background(), mustAccountID(t, id))
	require.NoError(t, err)
	assert.False(t, account.IsActivated())
}

func TestActivateAccount_UnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	unknown, err := valueobject.NewAccountID()
	require.NoError(t, err)

	w := env.activate(t, unknown.String(), "0042", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivateAccount_NoActivationCode(t *testing.T) {
	env := newTestEnv(t)
	id, _ := registeredAccount(t, env)

	// Simulate a lost activation row.
	delete(env.activations.byAccount, id)

	w := env.activate(t, id, "0042", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivateAccount_BadAccountID(t *testing.T) {
	env := newTestEnv(t)

	w := env.activate(t, "not-a-uuid", "0042", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivateAccount_RequiresBasicAuth(t *testing.T) {
	env := newTestEnv(t)
	id, code := registeredAccount(t, env)

	w := env.activate(t, id, code, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	// Wrong credentials fail the same way.
	req := httptest.NewRequest(http.MethodGet, "/activate/"+id+"?code="+code, nil)
	req.SetBasicAuth("api", "wrong")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func mustAccountID(t *testing.T, s string) valueobject.AccountID {
	t.Helper()
	id, err := valueobject.AccountIDFromString(s)
	require.NoError(t, err)
	return id
}
