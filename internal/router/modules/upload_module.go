package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
)

type UploadModule struct {
	Handler *handlers.UploadHandler
	Limiter gin.HandlerFunc
}

func NewUploadModule(h *handlers.UploadHandler, limiter gin.HandlerFunc) *UploadModule {
	return &UploadModule{Handler: h, Limiter: limiter}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads/video", m.Limiter, m.Handler.Video)
}
