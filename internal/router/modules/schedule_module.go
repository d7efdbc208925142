package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
)

type ScheduleModule struct {
	Handler *handlers.ScheduleHandler
}

func NewScheduleModule(h *handlers.ScheduleHandler) *ScheduleModule {
	return &ScheduleModule{Handler: h}
}

// Register mounts the fixture routes. GET takes an owner id, DELETE a
// schedule id; gin keeps a separate tree per method so the names may differ.
func (m *ScheduleModule) Register(rg *gin.RouterGroup) {
	rg.GET("/schedule/:userId", m.Handler.List)
	rg.POST("/schedule", m.Handler.Create)
	rg.DELETE("/schedule/:id", m.Handler.Delete)
}
