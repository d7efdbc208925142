package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
)

// ObjectUploader stores an object and returns its public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

var videoExtTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
}

type VideoService struct {
	// Uploader is nil when no bucket is configured.
	Uploader ObjectUploader
	Clock    clock.Clock
}

func NewVideoService(u ObjectUploader, clk clock.Clock) *VideoService {
	return &VideoService{Uploader: u, Clock: clk}
}

func (s *VideoService) Enabled() bool {
	return s.Uploader != nil
}

// VideoContentType resolves the clip's content type from the declared
// header, falling back to the file extension. ok is false for non-video files.
func VideoContentType(filename, declared string) (string, bool) {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if strings.HasPrefix(declared, "video/") {
		return declared, true
	}
	if declared != "" && declared != "application/octet-stream" {
		return "", false
	}
	ct, ok := videoExtTypes[strings.ToLower(filepath.Ext(filename))]
	return ct, ok
}

// Upload stores a match clip under videos/<owner>/<date>/ and returns its URL.
func (s *VideoService) Upload(ctx context.Context, owner, filename, contentType string, r io.Reader) (string, error) {
	if !s.Enabled() {
		return "", ErrUploadsDisabled
	}
	ct, ok := VideoContentType(filename, contentType)
	if !ok {
		return "", ErrNotVideo
	}

	if owner = strings.TrimSpace(owner); owner == "" || strings.ContainsAny(owner, "/\\.") {
		owner = "anonymous"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := path.Join("videos", owner, s.Clock.Now().UTC().Format("2006/01/02"), uuid.NewString()+ext)

	url, err := s.Uploader.Upload(ctx, objectPath, ct, r)
	if err != nil {
		return "", fmt.Errorf("upload video: %w", err)
	}
	return url, nil
}
