package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/repository"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) repository.PostRepository {
	return &PostRepo{db: db}
}

func (repo *PostRepo) List(ctx context.Context) ([]repository.PostWithAuthor, error) {
	const query = `
SELECT p.id, p.title, p.content, p.created_at, u.id, u.name, u.email
FROM posts p
LEFT JOIN users u ON p.author_id = u.id
ORDER BY p.created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.PostWithAuthor, 0, 100)
	for rows.Next() {
		var post entity.Post
		var author repository.AuthorSummary
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt,
			&author.ID, &author.Name, &author.Email); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		post.AuthorID = author.ID
		result = append(result, repository.PostWithAuthor{
			Post:   &post,
			Author: author,
		})
	}
	return result, rows.Err()
}

// GetDetail runs the single join query for the post detail view:
// posts joined to users (many-to-one) and left-joined to comments
// (one-to-many), comments ordered by creation time descending.
//
// The left join fans out one row per comment, so the result set is collapsed
// here into one PostDetail carrying a comments slice. A post with zero
// comments still yields exactly one row with NULL comment columns; that
// null-padded row is filtered out rather than emitted as a placeholder.
// Returns (nil, nil) when no post matches the ID.
func (repo *PostRepo) GetDetail(ctx context.Context, id string) (*repository.PostDetail, error) {
	const query = `
SELECT p.id, p.title, p.content, p.created_at,
       u.id, u.name, u.email,
       c.id, c.content, c.author_id, c.created_at
FROM posts p
LEFT JOIN users u ON p.author_id = u.id
LEFT JOIN comments c ON c.post_id = p.id
WHERE p.id = $1
ORDER BY c.created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("GetDetail: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var detail *repository.PostDetail
	for rows.Next() {
		var postID, title, content string
		var createdAt time.Time
		var authorID, authorName, email string
		var commentID, commentContent, commentAuthorID sql.NullString
		var commentCreatedAt sql.NullTime
		if err := rows.Scan(&postID, &title, &content, &createdAt,
			&authorID, &authorName, &email,
			&commentID, &commentContent, &commentAuthorID, &commentCreatedAt); err != nil {
			return nil, fmt.Errorf("GetDetail: Scan: %w", err)
		}

		if detail == nil {
			detail = &repository.PostDetail{
				ID:        postID,
				Title:     title,
				Content:   content,
				CreatedAt: createdAt,
				Author: repository.AuthorSummary{
					ID:    authorID,
					Name:  authorName,
					Email: email,
				},
				Comments: []repository.CommentView{},
			}
		}

		// NULL comment columns mean this post has no comments at all
		if !commentID.Valid {
			continue
		}
		detail.Comments = append(detail.Comments, repository.CommentView{
			ID:        commentID.String,
			Content:   commentContent.String,
			AuthorID:  commentAuthorID.String,
			CreatedAt: commentCreatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetDetail: %w", err)
	}
	return detail, nil
}

func (repo *PostRepo) Create(ctx context.Context, post *entity.Post) error {
	const query = `
INSERT INTO posts (title, content, author_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, post.Title, post.Content, post.AuthorID).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrAuthorNotFound
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// foreignKeyViolation is the PostgreSQL error code for foreign key constraint violations.
const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
