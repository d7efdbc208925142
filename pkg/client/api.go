package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/accadex/accadex/internal/domain/entity"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Academy  string `json:"academy,omitempty"`
}

// AuthResponse is the reply of register and login.
type AuthResponse struct {
	Token string            `json:"token"`
	User  entity.PublicUser `json:"user"`
}

type Profile struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	Academy string      `json:"academy"`
}

type NewMatch struct {
	Opponent string             `json:"opponent"`
	Result   entity.MatchResult `json:"result"`
	Score    string             `json:"score"`
	Player   string             `json:"player"`
	Stats    entity.MatchStats  `json:"stats"`
	Date     *time.Time         `json:"date,omitempty"`
}

type NewSchedule struct {
	Player   string             `json:"player"`
	Date     time.Time          `json:"date"`
	Opponent string             `json:"opponent"`
	Type     entity.FixtureType `json:"type,omitempty"`
}

type NewInsight struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Type          entity.InsightType `json:"type,omitempty"`
	RelatedPlayer string             `json:"relatedPlayer,omitempty"`
}

type ChatRequest struct {
	Message  string `json:"message,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the current token.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Matches(ctx context.Context, userID string) ([]entity.Match, error) {
	var out []entity.Match
	err := c.doJSON(ctx, http.MethodGet, "/api/matches/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *Client) CreateMatch(ctx context.Context, m NewMatch) (*entity.Match, error) {
	var out entity.Match
	if err := c.doJSON(ctx, http.MethodPost, "/api/matches", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Schedules(ctx context.Context, userID string) ([]entity.Schedule, error) {
	var out []entity.Schedule
	err := c.doJSON(ctx, http.MethodGet, "/api/schedule/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *Client) CreateSchedule(ctx context.Context, s NewSchedule) (*entity.Schedule, error) {
	var out entity.Schedule
	if err := c.doJSON(ctx, http.MethodPost, "/api/schedule", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/schedule/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Insights(ctx context.Context, userID string) ([]entity.Insight, error) {
	var out []entity.Insight
	err := c.doJSON(ctx, http.MethodGet, "/api/insights/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *Client) CreateInsight(ctx context.Context, in NewInsight) (*entity.Insight, error) {
	var out entity.Insight
	if err := c.doJSON(ctx, http.MethodPost, "/api/insights", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat sends one stateless turn and returns the persona's reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) SearchUsers(ctx context.Context, q string, size int) ([]entity.UserSummary, error) {
	v := url.Values{"q": {q}}
	if size > 0 {
		v.Set("size", strconv.Itoa(size))
	}
	var out []entity.UserSummary
	err := c.doJSON(ctx, http.MethodGet, "/api/users/search?"+v.Encode(), nil, &out)
	return out, err
}

// UploadVideo posts a clip as multipart form data and returns its URL, ready
// to pass as ChatRequest.VideoURL. The body is buffered in memory.
func (c *Client) UploadVideo(ctx context.Context, filename, contentType, player string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if player != "" {
		if err := mw.WriteField("player", player); err != nil {
			return "", err
		}
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename=%q`, filepath.Base(filename)))
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read video: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads/video", &buf)
	if err != nil {
		return "", fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	var out struct {
		VideoURL string `json:"videoUrl"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.VideoURL, nil
}
