package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
)

type InsightModule struct {
	Handler *handlers.InsightHandler
}

func NewInsightModule(h *handlers.InsightHandler) *InsightModule {
	return &InsightModule{Handler: h}
}

func (m *InsightModule) Register(rg *gin.RouterGroup) {
	rg.GET("/insights/:userId", m.Handler.List)
	rg.POST("/insights", m.Handler.Create)
}
