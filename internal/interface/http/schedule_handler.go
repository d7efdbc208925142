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

type ScheduleHandler struct {
	Svc    *application.ScheduleService
	Logger *logrus.Logger
}

func NewScheduleHandler(svc *application.ScheduleService, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

type createScheduleRequest struct {
	Player   string    `json:"player" binding:"required"`
	Date     time.Time `json:"date" binding:"notzerotime"`
	Opponent string    `json:"opponent" binding:"required"`
	Type     string    `json:"type" binding:"omitempty,fixturetype"`
}

// List handles GET /api/schedule/:userId, earliest first.
func (h *ScheduleHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.Logger.WithError(err).Error("list schedules failed")
		response.ServerError(c)
		return
	}
	if out == nil {
		out = []entity.Schedule{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sc, err := h.Svc.Create(c.Request.Context(), application.CreateScheduleInput{
		Player:   req.Player,
		Date:     req.Date,
		Opponent: req.Opponent,
		Type:     entity.FixtureType(req.Type),
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"player": "must be a valid user id"})
			return
		}
		h.Logger.WithError(err).Error("create schedule failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// Delete handles DELETE /api/schedule/:id.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrScheduleNotFound) {
			response.Error(c, http.StatusNotFound, "Schedule not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("schedule_id", id).Error("delete schedule failed")
		response.ServerError(c)
		return
	}
	response.Msg(c, http.StatusOK, "Schedule removed")
}
