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
)

/* ─────────────────────────── helpers ─────────────────────────── */

func userRows(users ...*entity.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Email, u.CreatedAt)
	}
	return rows
}

/* ─────────────────────────── 1. List ─────────────────────────── */

func TestUserRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	want := []*entity.User{
		{ID: "a1", Name: "Ada", Email: "ada@example.com", CreatedAt: now},
		{ID: "b2", Name: "Bob", Email: "bob@example.com", CreatedAt: now.Add(-time.Hour)},
	}

	mock.ExpectQuery("FROM users").
		WillReturnRows(userRows(want...))

	repo := pg.NewUserRepo(db)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").WillReturnRows(userRows())

	repo := pg.NewUserRepo(db)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	// empty store must produce an empty slice, not nil, so the handler
	// serializes [] rather than null
	if got == nil || len(got) != 0 {
		t.Fatalf("List got=%v, want empty slice", got)
	}
}

/* ─────────────────────────── 2. Create ─────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("generated-id", now))

	repo := pg.NewUserRepo(db)
	user := &entity.User{Name: "Ada", Email: "ada@example.com"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if user.ID != "generated-id" {
		t.Errorf("user.ID = %q, want generated-id", user.ID)
	}
	if !user.CreatedAt.Equal(now) {
		t.Errorf("user.CreatedAt = %v, want %v", user.CreatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// unique_violation from the users_email_key constraint
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "ada@example.com").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Name: "Ada", Email: "ada@example.com"})
	if !errors.Is(err, entity.ErrDuplicateEmail) {
		t.Fatalf("Create err=%v, want ErrDuplicateEmail", err)
	}
}

func TestUserRepo_Create_OtherError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "ada@example.com").
		WillReturnError(errors.New("connection refused"))

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Name: "Ada", Email: "ada@example.com"})
	if err == nil || errors.Is(err, entity.ErrDuplicateEmail) {
		t.Fatalf("Create err=%v, want wrapped infrastructure error", err)
	}
}
