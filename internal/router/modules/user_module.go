package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
	"github.com/accadex/accadex/internal/interface/middleware"
	"github.com/accadex/accadex/pkg/helpers"
)

// UserModule exposes the searchable user directory to signed-in users.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/search", m.Handler.Search)
	}
}
