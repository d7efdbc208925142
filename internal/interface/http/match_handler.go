package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/pkg/response"
	"github.com/accadex/accadex/pkg/validation"
)

type MatchHandler struct {
	Svc    *application.MatchService
	Logger *logrus.Logger
}

func NewMatchHandler(svc *application.MatchService, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{Svc: svc, Logger: logger}
}

type createMatchRequest struct {
	Opponent string            `json:"opponent" binding:"required"`
	Result   string            `json:"result" binding:"required,result"`
	Score    string            `json:"score" binding:"required"`
	Player   string            `json:"player" binding:"required"`
	Stats    entity.MatchStats `json:"stats"`
	Date     *time.Time        `json:"date"`
}

// List handles GET /api/matches/:userId, newest first.
func (h *MatchHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.Logger.WithError(err).Error("list matches failed")
		response.ServerError(c)
		return
	}
	if out == nil {
		out = []entity.Match{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *MatchHandler) Create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Create(c.Request.Context(), application.CreateMatchInput{
		Opponent: req.Opponent,
		Result:   entity.MatchResult(req.Result),
		Score:    req.Score,
		Player:   req.Player,
		Stats:    req.Stats,
		Date:     req.Date,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"player": "must be a valid user id"})
			return
		}
		h.Logger.WithError(err).Error("create match failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, m)
}
