package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/pkg/response"
	"github.com/accadex/accadex/pkg/validation"
)

type InsightHandler struct {
	Svc    *application.InsightService
	Logger *logrus.Logger
}

func NewInsightHandler(svc *application.InsightService, logger *logrus.Logger) *InsightHandler {
	return &InsightHandler{Svc: svc, Logger: logger}
}

type createInsightRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Type          string `json:"type" binding:"omitempty,insighttype"`
	RelatedPlayer string `json:"relatedPlayer"`
}

func (h *InsightHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.Logger.WithError(err).Error("list insights failed")
		response.ServerError(c)
		return
	}
	if out == nil {
		out = []entity.Insight{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *InsightHandler) Create(c *gin.Context) {
	var req createInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in, err := h.Svc.Create(c.Request.Context(), application.CreateInsightInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          entity.InsightType(req.Type),
		RelatedPlayer: req.RelatedPlayer,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"relatedPlayer": "must be a valid user id"})
			return
		}
		h.Logger.WithError(err).Error("create insight failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, in)
}
