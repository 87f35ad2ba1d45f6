package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	accountapp "github.com/oksasatya/registration-api/internal/application"
	repo "github.com/oksasatya/registration-api/internal/domain/repository"
	"github.com/oksasatya/registration-api/internal/domain/valueobject"
	"github.com/oksasatya/registration-api/pkg/helpers"
	"github.com/oksasatya/registration-api/pkg/response"
	"github.com/oksasatya/registration-api/pkg/validation"
)

type AccountHandler struct {
	Register *accountapp.RegisterAccountHandler
	Activate *accountapp.ActivateAccountHandler
	Logger   *logrus.Logger
}

func NewAccountHandler(register *accountapp.RegisterAccountHandler, activate *accountapp.ActivateAccountHandler, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Register: register, Activate: activate, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// RegisterAccount handles POST /api/accounts.
func (h *AccountHandler) RegisterAccount(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"email": "must be a valid email"})
		return
	}
	password, err := valueobject.NewPassword(req.Password)
	if err != nil {
		if errors.Is(err, valueobject.ErrWeakPassword) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"password": "must be at least 8 characters long"})
			return
		}
		helpers.LogError(h.Logger, "password hashing failed", err, nil)
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	account, err := h.Register.Handle(c.Request.Context(), accountapp.RegisterAccountCommand{
		Email:    email,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmailAlreadyExists) {
			response.Error[any](c, http.StatusConflict, "account with this email already exists", nil)
			return
		}
		helpers.LogError(h.Logger, "register account failed", err, logrus.Fields{"email": email.String()})
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":           account.ID().String(),
		"email":        account.Email().String(),
		"is_activated": account.IsActivated(),
	}, "account registered, check your email for the activation code")
}

// ActivateAccount handles GET and POST /activate/:account_id?code=XXXX.
// GET serves the emailed link; POST serves API clients. Both run the
// same workflow.
func (h *AccountHandler) ActivateAccount(c *gin.Context) {
	accountID, err := valueobject.AccountIDFromString(c.Param("account_id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid account id", nil)
		return
	}
	code, err := valueobject.NewActivationCode(c.Query("code"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "activation code must be exactly 4 digits", nil)
		return
	}

	err = h.Activate.Handle(c.Request.Context(), accountapp.ActivateAccountCommand{
		AccountID: accountID,
		Code:      code,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountapp.ErrAccountNotFound):
			response.Error[any](c, http.StatusNotFound, "account not found", nil)
		case errors.Is(err, accountapp.ErrActivationCodeNotFound):
			response.Error[any](c, http.StatusNotFound, "activation code not found", nil)
		case errors.Is(err, accountapp.ErrActivationCodeExpired):
			response.Error[any](c, http.StatusGone, "activation code expired", nil)
		case errors.Is(err, accountapp.ErrInvalidActivationCode):
			response.Error[any](c, http.StatusBadRequest, "invalid activation code", nil)
		default:
			helpers.LogError(h.Logger, "activate account failed", err, logrus.Fields{"account_id": accountID.String()})
			response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	response.Success[any](c, http.StatusOK, gin.H{
		"id":           accountID.String(),
		"is_activated": true,
	}, "account activated")
}
