package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/pkg/response"
)

// HealthModule serves the liveness line at / and a store ping at /healthz.
// It is mounted on the engine root, not under /api.
type HealthModule struct {
	Store  repository.Store
	Logger *logrus.Logger
}

func NewHealthModule(store repository.Store, logger *logrus.Logger) *HealthModule {
	return &HealthModule{Store: store, Logger: logger}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Accadex API is running")
	})
	rg.GET("/healthz", m.healthz)
}

func (m *HealthModule) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := m.Store.Ping(ctx); err != nil {
		m.Logger.WithError(err).Warn("health check: store unreachable")
		response.Error(c, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
