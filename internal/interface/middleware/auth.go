package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/accadex/accadex/pkg/helpers"
	"github.com/accadex/accadex/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// bearerToken reads "Authorization: Bearer <token>", falling back to the
// x-auth-token header older clients send.
func bearerToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return strings.TrimSpace(c.GetHeader("x-auth-token"))
}

// Auth validates the session token and sets userID and userRole in the Gin
// context on success.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "No token, authorization denied", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Token is not valid", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.User.ID)
		c.Set(CtxUserRoleKey, claims.User.Role)
		c.Next()
	}
}
