package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/pkg/response"
	"github.com/accadex/accadex/pkg/validation"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Message  string `json:"message"`
	VideoURL string `json:"videoUrl"`
	Role     string `json:"role"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Send handles POST /api/chat. Unknown roles fall back to the AI coach.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	text, err := h.Svc.Reply(c.Request.Context(), application.ChatInput{
		Message:  req.Message,
		VideoURL: req.VideoURL,
		Persona:  application.ParsePersona(req.Role),
	})
	switch {
	case errors.Is(err, application.ErrEmptyChat):
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"message": "message or videoUrl is required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, chatResponse{Response: application.UnavailableReply})
	default:
		c.JSON(http.StatusOK, chatResponse{Response: text})
	}
}
