package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/pkg/response"
)

type UserHandler struct {
	Directory *application.DirectoryService
	Logger    *logrus.Logger
}

func NewUserHandler(dir *application.DirectoryService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Directory: dir, Logger: logger}
}

// Search handles GET /api/users/search?q=&size=.
func (h *UserHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	out, err := h.Directory.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		h.Logger.WithError(err).Error("user search failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, out)
}
