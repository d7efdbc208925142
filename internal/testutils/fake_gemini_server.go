package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// Prompts containing these markers change how FakeGeminiServer answers.
const (
	GeminiFailMarker  = "[fail]"
	GeminiEmptyMarker = "[empty]"
	GeminiSlowMarker  = "[slow]"
)

// FakeGeminiServer imitates the generateContent endpoint. It echoes the
// prompt back as "<model>: <prompt>" and records every request.
type FakeGeminiServer struct {
	s *httptest.Server

	mu       sync.Mutex
	requests []GeminiRequest
}

// GeminiRequest is what the fake saw for one call.
type GeminiRequest struct {
	Model  string
	APIKey string
	Prompt string
}

func NewFakeGeminiServer() *FakeGeminiServer {
	f := &FakeGeminiServer{}
	r := chi.NewRouter()
	r.Post("/v1beta/models/{model}:generateContent", f.generateHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeGeminiServer) Close() {
	f.s.Close()
}

func (f *FakeGeminiServer) URL() string {
	return f.s.URL
}

// Requests returns a copy of the recorded calls.
func (f *FakeGeminiServer) Requests() []GeminiRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]GeminiRequest(nil), f.requests...)
}

func (f *FakeGeminiServer) generateHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Contents) == 0 || len(body.Contents[0].Parts) == 0 {
		http.Error(w, `{"error":{"code":400,"message":"invalid body"}}`, http.StatusBadRequest)
		return
	}
	prompt := body.Contents[0].Parts[0].Text
	model := chi.URLParam(r, "model")

	f.mu.Lock()
	f.requests = append(f.requests, GeminiRequest{Model: model, APIKey: r.URL.Query().Get("key"), Prompt: prompt})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.Contains(prompt, GeminiFailMarker):
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"internal"}}`))
	case strings.Contains(prompt, GeminiEmptyMarker):
		w.Write([]byte(`{"candidates":[]}`))
	case strings.Contains(prompt, GeminiSlowMarker):
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte(`{"candidates":[]}`))
	default:
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": fmt.Sprintf("%s: %s", model, prompt)}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
