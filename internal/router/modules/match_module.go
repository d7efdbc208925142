package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
)

// MatchModule serves /api/matches. Routes trust the caller-supplied owner id.
type MatchModule struct {
	Handler *handlers.MatchHandler
}

func NewMatchModule(h *handlers.MatchHandler) *MatchModule {
	return &MatchModule{Handler: h}
}

func (m *MatchModule) Register(rg *gin.RouterGroup) {
	rg.GET("/matches/:userId", m.Handler.List)
	rg.POST("/matches", m.Handler.Create)
}
