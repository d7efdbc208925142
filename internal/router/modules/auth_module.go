package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/accadex/accadex/internal/interface/http"
	"github.com/accadex/accadex/internal/interface/middleware"
	"github.com/accadex/accadex/pkg/helpers"
)

// AuthModule serves /api/auth. Register and login are public; me needs a
// bearer token.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/register", m.Handler.Register)
	g.POST("/login", m.Handler.Login)
	g.GET("/me", middleware.Auth(m.JWT), m.Handler.Me)
}
