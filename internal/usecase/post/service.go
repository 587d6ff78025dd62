package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/infra/cache"
	"github.com/rasel-stacklearner/blogger/internal/observability/metrics"
	"github.com/rasel-stacklearner/blogger/internal/repository"
)

// DefaultDetailTTL is the cache lifetime for post detail documents.
// Posts and comments are immutable once written, so a cached document can
// only go stale by missing comments added after it was cached. The TTL
// bounds that staleness window.
const DefaultDetailTTL = 300 * time.Second

// CreateInput represents the input parameters for creating a new post.
type CreateInput struct {
	Title    string
	Content  string
	AuthorID string
}

// DetailCache caches rendered post detail documents.
// Implementations must return cache.ErrCacheMiss from Get when no entry
// exists for the key.
type DetailCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Service provides post management use cases.
// It handles business logic for post operations and delegates persistence
// to the repository. The detail read path goes through the cache first;
// the cache is strictly optional and any cache failure falls back to the
// repository without failing the request.
type Service struct {
	Repo      repository.PostRepository
	Cache     DetailCache
	DetailTTL time.Duration
}

// List retrieves all posts with their author summaries, newest first.
func (s *Service) List(ctx context.Context) ([]repository.PostWithAuthor, error) {
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create validates the input and persists a new post.
// Returns entity.ValidationErrors when the input is invalid and
// entity.ErrAuthorNotFound when the author does not exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	if err := entity.ValidatePost(in.Title, in.Content, in.AuthorID); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		if errors.Is(err, entity.ErrAuthorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetDetail retrieves the full detail view of a post: the post itself, its
// author and all comments (newest first).
//
// Read path: the cache is consulted first; on a hit the repository is not
// touched at all. On a miss the document is loaded from the repository and
// written back to the cache with the configured TTL. Cache errors are
// recorded and served as misses, they never fail the request.
//
// Returns ErrInvalidPostID for malformed IDs and ErrPostNotFound when no
// post matches.
func (s *Service) GetDetail(ctx context.Context, id string) (*repository.PostDetail, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, ErrInvalidPostID
	}

	key := cache.PostDetailKey(id)

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key); err == nil {
			var detail repository.PostDetail
			if uerr := json.Unmarshal(raw, &detail); uerr == nil {
				metrics.RecordCacheHit()
				return &detail, nil
			}
			// corrupt entry, treat as a miss and let the write-back heal it
			slog.Warn("discarding undecodable cache entry", slog.String("key", key))
			metrics.RecordCacheError()
		} else if errors.Is(err, cache.ErrCacheMiss) {
			metrics.RecordCacheMiss()
		} else {
			metrics.RecordCacheError()
			slog.Debug("cache read failed, falling back to repository",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	detail, err := s.Repo.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post detail: %w", err)
	}
	if detail == nil {
		return nil, ErrPostNotFound
	}

	if s.Cache != nil {
		s.populate(ctx, key, detail)
	}

	return detail, nil
}

// populate writes the detail document back to the cache, best effort.
func (s *Service) populate(ctx context.Context, key string, detail *repository.PostDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		slog.Error("failed to marshal post detail for cache", slog.String("error", err.Error()))
		return
	}

	if err := s.Cache.Set(ctx, key, raw, s.ttl()); err != nil {
		metrics.CacheWriteFailuresTotal.Inc()
		slog.Debug("cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

func (s *Service) ttl() time.Duration {
	if s.DetailTTL > 0 {
		return s.DetailTTL
	}
	return DefaultDetailTTL
}
