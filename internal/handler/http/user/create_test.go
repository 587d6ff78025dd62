package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/user"
	userUC "github.com/rasel-stacklearner/blogger/internal/usecase/user"
)

const userID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

/* ───────── stub repository ───────── */

type stubRepo struct {
	users   []*entity.User
	created *entity.User
	err     error
}

func (s *stubRepo) List(_ context.Context) ([]*entity.User, error) {
	return s.users, s.err
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	u.ID = userID
	u.CreatedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s.created = u
	return nil
}

/* ───────── test cases ───────── */

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubRepo{}
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: stub}}

	body := `{"name":"Ada","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}

	var result user.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID != userID {
		t.Errorf("result.ID = %q, want %q", result.ID, userID)
	}
	if result.Name != "Ada" {
		t.Errorf("result.Name = %q, want %q", result.Name, "Ada")
	}
	if result.Email != "ada@example.com" {
		t.Errorf("result.Email = %q", result.Email)
	}
}

func TestCreateHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name:       "empty name",
			body:       `{"name":"","email":"ada@example.com"}`,
			wantFields: []string{"name"},
		},
		{
			name:       "name too long",
			body:       `{"name":"` + strings.Repeat("x", 101) + `","email":"ada@example.com"}`,
			wantFields: []string{"name"},
		},
		{
			name:       "malformed email",
			body:       `{"name":"Ada","email":"not-an-email"}`,
			wantFields: []string{"email"},
		},
		{
			name:       "everything missing",
			body:       `{}`,
			wantFields: []string{"name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRepo{}
			handler := user.CreateHandler{Svc: &userUC.Service{Repo: stub}}

			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}

			var resp struct {
				Error   string `json:"error"`
				Details []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"details"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error != "validation error" {
				t.Errorf("error = %q, want %q", resp.Error, "validation error")
			}
			if len(resp.Details) != len(tt.wantFields) {
				t.Fatalf("len(details) = %d, want %d", len(resp.Details), len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if resp.Details[i].Field != field {
					t.Errorf("details[%d].Field = %q, want %q", i, resp.Details[i].Field, field)
				}
			}

			if stub.created != nil {
				t.Error("row was inserted despite validation failure")
			}
		})
	}
}

func TestCreateHandler_DuplicateEmail(t *testing.T) {
	stub := &stubRepo{err: entity.ErrDuplicateEmail}
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: stub}}

	body := `{"name":"Ada","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "email already exists" {
		t.Errorf("error = %q, want %q", resp["error"], "email already exists")
	}
}

func TestCreateHandler_MalformedJSON(t *testing.T) {
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: &stubRepo{}}}

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
