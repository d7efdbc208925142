package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
)

// ChatModule serves POST /api/chat behind a per-IP limiter, since every call
// spends upstream quota.
type ChatModule struct {
	Handler *handlers.ChatHandler
	Limiter gin.HandlerFunc
}

func NewChatModule(h *handlers.ChatHandler, limiter gin.HandlerFunc) *ChatModule {
	return &ChatModule{Handler: h, Limiter: limiter}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", m.Limiter, m.Handler.Send)
}
