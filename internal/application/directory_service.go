package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/accadex/accadex/internal/domain/entity"
)

// UserSearcher queries the user directory.
type UserSearcher interface {
	Search(ctx context.Context, q string, size int) ([]entity.UserSummary, error)
}

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

type DirectoryService struct {
	// Searcher is nil when search is disabled.
	Searcher UserSearcher
}

func NewDirectoryService(s UserSearcher) *DirectoryService {
	return &DirectoryService{Searcher: s}
}

// Search returns matching users. Blank queries and a disabled directory
// yield an empty list.
func (s *DirectoryService) Search(ctx context.Context, q string, size int) ([]entity.UserSummary, error) {
	q = strings.TrimSpace(q)
	if s.Searcher == nil || q == "" {
		return []entity.UserSummary{}, nil
	}
	if size <= 0 || size > maxSearchSize {
		size = defaultSearchSize
	}
	out, err := s.Searcher.Search(ctx, q, size)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if out == nil {
		out = []entity.UserSummary{}
	}
	return out, nil
}
