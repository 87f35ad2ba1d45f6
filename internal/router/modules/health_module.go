package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/registration-api/internal/interface/http"
)

// HealthModule exposes GET /health at the engine root so load
// balancers can probe it without the /api prefix.
type HealthModule struct {
	Engine  *gin.Engine
	Handler *handlers.HealthHandler
}

func NewHealthModule(engine *gin.Engine, h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Engine: engine, Handler: h}
}

func (m *HealthModule) Register(_ *gin.RouterGroup) {
	m.Engine.GET("/health", m.Handler.Health)
}
