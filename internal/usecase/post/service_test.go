package post_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/infra/cache"
	"github.com/rasel-stacklearner/blogger/internal/repository"
	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
)

const (
	postID   = "550e8400-e29b-41d4-a716-446655440000"
	authorID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
)

/* ───────── stubs ───────── */

// minimal in-memory PostRepository
type stubRepo struct {
	details    map[string]*repository.PostDetail
	posts      []repository.PostWithAuthor
	err        error // forces an error when set
	detailHits int   // number of GetDetail calls
}

func newStubRepo() *stubRepo {
	return &stubRepo{details: map[string]*repository.PostDetail{}}
}

func (s *stubRepo) List(_ context.Context) ([]repository.PostWithAuthor, error) {
	return s.posts, s.err
}

func (s *stubRepo) GetDetail(_ context.Context, id string) (*repository.PostDetail, error) {
	s.detailHits++
	if s.err != nil {
		return nil, s.err
	}
	return s.details[id], nil
}

func (s *stubRepo) Create(_ context.Context, p *entity.Post) error {
	if s.err != nil {
		return s.err
	}
	p.ID = postID
	p.CreatedAt = time.Now()
	return nil
}

// in-memory DetailCache
type stubCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return raw, nil
}

func (c *stubCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = val
	c.ttls[key] = ttl
	return nil
}

func sampleDetail() *repository.PostDetail {
	return &repository.PostDetail{
		ID:      postID,
		Title:   "Going Steady",
		Content: "a body",
		Author: repository.AuthorSummary{
			ID:    authorID,
			Name:  "Jane",
			Email: "jane@example.com",
		},
		Comments: []repository.CommentView{},
	}
}

/* ───────── 1. GetDetail ───────── */

func TestGetDetail_CacheMissLoadsAndPopulates(t *testing.T) {
	repo := newStubRepo()
	repo.details[postID] = sampleDetail()
	c := newStubCache()
	svc := &postUC.Service{Repo: repo, Cache: c}

	detail, err := svc.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if detail.Title != "Going Steady" {
		t.Errorf("Title = %q", detail.Title)
	}
	if repo.detailHits != 1 {
		t.Errorf("repository hit %d times, want 1", repo.detailHits)
	}

	key := cache.PostDetailKey(postID)
	raw, ok := c.entries[key]
	if !ok {
		t.Fatal("detail was not written back to the cache")
	}
	var cached repository.PostDetail
	if err := json.Unmarshal(raw, &cached); err != nil {
		t.Fatalf("cached entry is not JSON: %v", err)
	}
	if cached.ID != postID {
		t.Errorf("cached ID = %q", cached.ID)
	}
	if c.ttls[key] != postUC.DefaultDetailTTL {
		t.Errorf("ttl = %v, want %v", c.ttls[key], postUC.DefaultDetailTTL)
	}
}

func TestGetDetail_CacheHitSkipsRepository(t *testing.T) {
	repo := newStubRepo()
	c := newStubCache()

	raw, _ := json.Marshal(sampleDetail())
	c.entries[cache.PostDetailKey(postID)] = raw

	svc := &postUC.Service{Repo: repo, Cache: c}

	detail, err := svc.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if detail.ID != postID {
		t.Errorf("ID = %q", detail.ID)
	}
	if repo.detailHits != 0 {
		t.Errorf("repository hit %d times on a cache hit, want 0", repo.detailHits)
	}
}

func TestGetDetail_CacheFailureFallsBackToRepository(t *testing.T) {
	repo := newStubRepo()
	repo.details[postID] = sampleDetail()
	c := newStubCache()
	c.getErr = errors.New("redis: connection refused")
	c.setErr = errors.New("redis: connection refused")

	svc := &postUC.Service{Repo: repo, Cache: c}

	detail, err := svc.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v, cache failure must not fail the request", err)
	}
	if detail.ID != postID {
		t.Errorf("ID = %q", detail.ID)
	}
	if repo.detailHits != 1 {
		t.Errorf("repository hit %d times, want 1", repo.detailHits)
	}
}

func TestGetDetail_CorruptCacheEntryFallsBack(t *testing.T) {
	repo := newStubRepo()
	repo.details[postID] = sampleDetail()
	c := newStubCache()
	c.entries[cache.PostDetailKey(postID)] = []byte("{not json")

	svc := &postUC.Service{Repo: repo, Cache: c}

	detail, err := svc.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if detail.Title != "Going Steady" {
		t.Errorf("Title = %q", detail.Title)
	}
	if repo.detailHits != 1 {
		t.Errorf("repository hit %d times, want 1", repo.detailHits)
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	svc := &postUC.Service{Repo: newStubRepo(), Cache: newStubCache()}

	_, err := svc.GetDetail(context.Background(), postID)
	if !errors.Is(err, postUC.ErrPostNotFound) {
		t.Fatalf("err=%v, want ErrPostNotFound", err)
	}
}

func TestGetDetail_InvalidID(t *testing.T) {
	repo := newStubRepo()
	svc := &postUC.Service{Repo: repo, Cache: newStubCache()}

	_, err := svc.GetDetail(context.Background(), "not-a-uuid")
	if !errors.Is(err, postUC.ErrInvalidPostID) {
		t.Fatalf("err=%v, want ErrInvalidPostID", err)
	}
	if repo.detailHits != 0 {
		t.Errorf("repository hit for an invalid ID")
	}
}

func TestGetDetail_WorksWithoutCache(t *testing.T) {
	repo := newStubRepo()
	repo.details[postID] = sampleDetail()
	svc := &postUC.Service{Repo: repo}

	detail, err := svc.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if detail.ID != postID {
		t.Errorf("ID = %q", detail.ID)
	}
}

/* ───────── 2. List ───────── */

func TestList(t *testing.T) {
	repo := newStubRepo()
	repo.posts = []repository.PostWithAuthor{
		{Post: &entity.Post{ID: postID, Title: "t"}, Author: repository.AuthorSummary{ID: authorID}},
	}
	svc := &postUC.Service{Repo: repo}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(posts) != 1 {
		t.Errorf("len = %d, want 1", len(posts))
	}
}

func TestList_RepositoryError(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("db down")
	svc := &postUC.Service{Repo: repo}

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

/* ───────── 3. Create ───────── */

func TestCreate(t *testing.T) {
	svc := &postUC.Service{Repo: newStubRepo()}

	created, err := svc.Create(context.Background(), postUC.CreateInput{
		Title:    "hello",
		Content:  "world",
		AuthorID: authorID,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.ID != postID {
		t.Errorf("ID = %q", created.ID)
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := &postUC.Service{Repo: newStubRepo()}

	_, err := svc.Create(context.Background(), postUC.CreateInput{
		Title:    "",
		Content:  "",
		AuthorID: "nope",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields, ok := entity.AsValidationErrors(err)
	if !ok {
		t.Fatalf("err=%v, want ValidationErrors", err)
	}
	if len(fields) != 3 {
		t.Errorf("reported %d invalid fields, want 3", len(fields))
	}
}

func TestCreate_AuthorNotFound(t *testing.T) {
	repo := newStubRepo()
	repo.err = entity.ErrAuthorNotFound
	svc := &postUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), postUC.CreateInput{
		Title:    "hello",
		Content:  "world",
		AuthorID: authorID,
	})
	if !errors.Is(err, entity.ErrAuthorNotFound) {
		t.Fatalf("err=%v, want ErrAuthorNotFound", err)
	}
}
