package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
)

type memUploader struct {
	path, contentType, body string
}

func (m *memUploader) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.path, m.contentType, m.body = objectPath, contentType, string(b)
	return "https://storage.example/" + objectPath, nil
}

func TestVideoContentType(t *testing.T) {
	tests := []struct {
		file, declared, want string
		ok                   bool
	}{
		{"clip.mp4", "video/mp4", "video/mp4", true},
		{"clip.MOV", "application/octet-stream", "video/quicktime", true},
		{"clip.webm", "", "video/webm", true},
		{"clip.bin", "video/x-custom; codecs=a", "video/x-custom", true},
		{"notes.txt", "text/plain", "", false},
		{"photo.jpg", "", "", false},
	}
	for _, tc := range tests {
		got, ok := VideoContentType(tc.file, tc.declared)
		assert.Equal(t, tc.ok, ok, tc.file)
		assert.Equal(t, tc.want, got, tc.file)
	}
}

func TestVideoService_Upload(t *testing.T) {
	up := &memUploader{}
	svc := NewVideoService(up, newMockClock())

	url, err := svc.Upload(context.Background(), "p1", "Nets.MP4", "video/mp4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.path, "videos/p1/2024/05/01/"))
	assert.True(t, strings.HasSuffix(up.path, ".mp4"))
	assert.Equal(t, "https://storage.example/"+up.path, url)
	assert.Equal(t, "frames", up.body)

	_, err = svc.Upload(context.Background(), "../etc", "a.mp4", "video/mp4", strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.path, "videos/anonymous/"))
}

func TestVideoService_errors(t *testing.T) {
	_, err := NewVideoService(nil, newMockClock()).Upload(context.Background(), "", "a.mp4", "video/mp4", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUploadsDisabled)

	_, err = NewVideoService(&memUploader{}, newMockClock()).Upload(context.Background(), "", "a.txt", "text/plain", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotVideo)
}

type stubSearcher struct {
	q    string
	size int
	out  []entity.UserSummary
	err  error
}

func (s *stubSearcher) Search(_ context.Context, q string, size int) ([]entity.UserSummary, error) {
	s.q, s.size = q, size
	return s.out, s.err
}

func TestDirectoryService(t *testing.T) {
	out, err := NewDirectoryService(nil).Search(context.Background(), "asha", 5)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	s := &stubSearcher{out: []entity.UserSummary{{ID: "1", Name: "Asha"}}}
	out, err = NewDirectoryService(s).Search(context.Background(), " asha ", 500)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "asha", s.q)
	assert.Equal(t, defaultSearchSize, s.size)

	_, err = NewDirectoryService(&stubSearcher{err: errors.New("boom")}).Search(context.Background(), "x", 1)
	assert.Error(t, err)
}
