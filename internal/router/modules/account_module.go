package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/registration-api/internal/container"
	handlers "github.com/oksasatya/registration-api/internal/interface/http"
	"github.com/oksasatya/registration-api/internal/interface/middleware"
)

// AccountModule wires account HTTP handlers into routes
// Public: POST /api/accounts
// Basic auth: GET|POST /activate/:account_id (engine root, matches the emailed link)

type AccountModule struct {
	Engine  *gin.Engine
	Handler *handlers.AccountHandler
}

func NewAccountModule(engine *gin.Engine, h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Engine: engine, Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	activateLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/accounts", registerLimiter, m.Handler.RegisterAccount)

	// Activation lives at the engine root so the emailed link works as-is.
	activate := m.Engine.Group("/activate")
	activate.Use(middleware.BasicAuth(cfg.APIUsername, cfg.APIPassword), activateLimiter)
	{
		activate.GET("/:account_id", m.Handler.ActivateAccount)
		activate.POST("/:account_id", m.Handler.ActivateAccount)
	}
}
