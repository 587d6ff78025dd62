package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	pg "github.com/rasel-stacklearner/blogger/internal/infra/adapter/persistence/postgres"
	"github.com/rasel-stacklearner/blogger/internal/repository"
)

const (
	postID   = "7c3f7a1e-0f0f-4d7e-9e86-0a9f6f8e1b2c"
	authorID = "b3f9f1f2-9a35-4f6e-9e41-2b1d2f0d6a01"
)

var detailCols = []string{
	"id", "title", "content", "created_at",
	"author_id", "author_name", "author_email",
	"comment_id", "comment_content", "comment_author_id", "comment_created_at",
}

/* ─────────────────────────── 1. GetDetail ─────────────────────────── */

// The left join produces one row per comment; the repo must collapse the
// fan-out into a single detail carrying the comments slice.
func TestPostRepo_GetDetail_CollapsesFanOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(detailCols).
		AddRow(postID, "Hi", "World", now,
			authorID, "Ada", "ada@example.com",
			"c2", "second", authorID, now.Add(2*time.Minute)).
		AddRow(postID, "Hi", "World", now,
			authorID, "Ada", "ada@example.com",
			"c1", "first", authorID, now.Add(time.Minute))

	mock.ExpectQuery("FROM posts p").
		WithArgs(postID).
		WillReturnRows(rows)

	repo := pg.NewPostRepo(db)
	got, err := repo.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}

	want := &repository.PostDetail{
		ID:        postID,
		Title:     "Hi",
		Content:   "World",
		CreatedAt: now,
		Author:    repository.AuthorSummary{ID: authorID, Name: "Ada", Email: "ada@example.com"},
		Comments: []repository.CommentView{
			{ID: "c2", Content: "second", AuthorID: authorID, CreatedAt: now.Add(2 * time.Minute)},
			{ID: "c1", Content: "first", AuthorID: authorID, CreatedAt: now.Add(time.Minute)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// A post with zero comments still yields one row with NULL comment columns.
// The null-padded row must be filtered out, not emitted as a placeholder.
func TestPostRepo_GetDetail_NoComments(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(detailCols).
		AddRow(postID, "Hi", "World", now,
			authorID, "Ada", "ada@example.com",
			nil, nil, nil, nil)

	mock.ExpectQuery("FROM posts p").
		WithArgs(postID).
		WillReturnRows(rows)

	repo := pg.NewPostRepo(db)
	got, err := repo.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if got == nil {
		t.Fatal("GetDetail returned nil for an existing post")
	}
	if got.Comments == nil || len(got.Comments) != 0 {
		t.Fatalf("Comments = %v, want empty slice", got.Comments)
	}
}

// No matching post means an empty result set, which maps to (nil, nil)
// rather than an out-of-range fault.
func TestPostRepo_GetDetail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM posts p").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows(detailCols))

	repo := pg.NewPostRepo(db)
	got, err := repo.GetDetail(context.Background(), postID)
	if err != nil {
		t.Fatalf("GetDetail err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetDetail = %+v, want nil", got)
	}
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestPostRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "title", "content", "created_at", "author_id", "author_name", "author_email",
	}).AddRow(postID, "Hi", "World", now, authorID, "Ada", "ada@example.com")

	mock.ExpectQuery("FROM posts p").WillReturnRows(rows)

	repo := pg.NewPostRepo(db)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	want := []repository.PostWithAuthor{{
		Post: &entity.Post{
			ID: postID, Title: "Hi", Content: "World",
			AuthorID: authorID, CreatedAt: now,
		},
		Author: repository.AuthorSummary{ID: authorID, Name: "Ada", Email: "ada@example.com"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepo_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "created_at", "author_id", "author_name", "author_email",
		}))

	repo := pg.NewPostRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("List got=%v err=%v, want empty slice", got, err)
	}
}

/* ─────────────────────────── 3. Create ─────────────────────────── */

func TestPostRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs("Hi", "World", authorID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(postID, now))

	repo := pg.NewPostRepo(db)
	post := &entity.Post{Title: "Hi", Content: "World", AuthorID: authorID}
	if err := repo.Create(context.Background(), post); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if post.ID != postID || !post.CreatedAt.Equal(now) {
		t.Errorf("post = %+v, want store-assigned id and timestamp", post)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostRepo_Create_AuthorNotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs("Hi", "World", authorID).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_author_id_fkey"})

	repo := pg.NewPostRepo(db)
	err := repo.Create(context.Background(), &entity.Post{Title: "Hi", Content: "World", AuthorID: authorID})
	if !errors.Is(err, entity.ErrAuthorNotFound) {
		t.Fatalf("Create err=%v, want ErrAuthorNotFound", err)
	}
}
