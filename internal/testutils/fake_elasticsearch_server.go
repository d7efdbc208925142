package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeElasticsearchServer keeps indexed documents in memory and answers
// searches with a case-insensitive substring match over all string fields.
type FakeElasticsearchServer struct {
	s *httptest.Server

	mu   sync.Mutex
	docs map[string]map[string]map[string]any // index -> id -> source
}

func NewFakeElasticsearchServer() *FakeElasticsearchServer {
	f := &FakeElasticsearchServer{docs: map[string]map[string]map[string]any{}}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The v8 client refuses to talk to servers without this header.
			w.Header().Set("X-Elastic-Product", "Elasticsearch")
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})
	r.Put("/{index}/_doc/{id}", f.indexHandler)
	r.Post("/{index}/_search", f.searchHandler)
	r.Get("/{index}/_search", f.searchHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeElasticsearchServer) Close() {
	f.s.Close()
}

func (f *FakeElasticsearchServer) URL() string {
	return f.s.URL
}

// Count returns how many documents the index holds.
func (f *FakeElasticsearchServer) Count(index string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs[index])
}

func (f *FakeElasticsearchServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	index, id := chi.URLParam(r, "index"), chi.URLParam(r, "id")
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad document"}`))
		return
	}

	f.mu.Lock()
	if f.docs[index] == nil {
		f.docs[index] = map[string]map[string]any{}
	}
	_, existed := f.docs[index][id]
	f.docs[index][id] = doc
	f.mu.Unlock()

	result := "created"
	status := http.StatusCreated
	if existed {
		result, status = "updated", http.StatusOK
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"_index": index, "_id": id, "result": result})
}

func (f *FakeElasticsearchServer) searchHandler(w http.ResponseWriter, r *http.Request) {
	index := chi.URLParam(r, "index")
	var body struct {
		Query struct {
			MultiMatch struct {
				Query string `json:"query"`
			} `json:"multi_match"`
		} `json:"query"`
		Size int `json:"size"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	q := strings.ToLower(body.Query.MultiMatch.Query)

	f.mu.Lock()
	ids := make([]string, 0, len(f.docs[index]))
	for id := range f.docs[index] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	hits := []map[string]any{}
	for _, id := range ids {
		doc := f.docs[index][id]
		if matches(doc, q) {
			hits = append(hits, map[string]any{"_index": index, "_id": id, "_source": doc})
		}
	}
	f.mu.Unlock()

	if body.Size > 0 && len(hits) > body.Size {
		hits = hits[:body.Size]
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hits": map[string]any{"total": map[string]any{"value": len(hits)}, "hits": hits},
	})
}

func matches(doc map[string]any, q string) bool {
	for _, v := range doc {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
