package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/accadex/accadex/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// UserIndex is the Elasticsearch-backed user directory.
type UserIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewUserIndex(es *elasticsearch.Client, index string) *UserIndex {
	return &UserIndex{es: es, index: index}
}

// Index upserts the user document keyed by user id.
func (x *UserIndex) Index(ctx context.Context, u entity.UserSummary) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.index, DocumentID: u.ID, Body: bytes.NewReader(b), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return fmt.Errorf("es index: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Search performs a multi_match query on name, email and academy.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]entity.UserSummary, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^2", "email", "academy"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string             `json:"_id"`
				Source entity.UserSummary `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("es search decode: %w", err)
	}

	out := make([]entity.UserSummary, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		doc := h.Source
		if doc.ID == "" {
			doc.ID = h.ID
		}
		out = append(out, doc)
	}
	return out, nil
}
