package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct {
	Limiter gin.HandlerFunc
}

func NewDebugModule(limiter gin.HandlerFunc) *DebugModule {
	return &DebugModule{Limiter: limiter}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar metrics, rate-limited per IP
	rg.GET("/debug/vars", m.Limiter, gin.WrapH(expvar.Handler()))
}
