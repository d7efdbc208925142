package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/pkg/response"
)

type UploadHandler struct {
	Svc      *application.VideoService
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewUploadHandler(svc *application.VideoService, maxBytes int64, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, MaxBytes: maxBytes, Logger: logger}
}

type uploadResponse struct {
	VideoURL string `json:"videoUrl"`
}

// Video handles POST /api/uploads/video with a multipart "video" field and an
// optional "player" field naming the owner.
func (h *UploadHandler) Video(c *gin.Context) {
	if !h.Svc.Enabled() {
		response.Error(c, http.StatusServiceUnavailable, "Video uploads are not configured", nil)
		return
	}
	if h.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)
	}

	fh, err := c.FormFile("video")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "Video is too large", nil)
			return
		}
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"video": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Error("open uploaded video failed")
		response.ServerError(c)
		return
	}
	defer f.Close()

	url, err := h.Svc.Upload(c.Request.Context(), c.PostForm("player"), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotVideo):
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"video": "must be a video file"})
		case errors.Is(err, application.ErrUploadsDisabled):
			response.Error(c, http.StatusServiceUnavailable, "Video uploads are not configured", nil)
		default:
			h.Logger.WithError(err).WithField("filename", fh.Filename).Error("video upload failed")
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusCreated, uploadResponse{VideoURL: url})
}
