package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/viktoryglory/blog-API/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// selectPost joins the author and category names so reads can return
// a post the way the API presents it.
const selectPost = `SELECT p.id, p.title, p.content, p.user_id, p.category_id,
       p.created_at, p.updated_at, u.username, c.name
FROM posts p
JOIN users u ON u.id = p.user_id
JOIN categories c ON c.id = p.category_id`

func scanPost(row interface{ Scan(...any) error }, p *models.Post) error {
	return row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &p.Author, &p.CategoryName)
}

// Create inserts a new post. Category and owner existence are checked
// by the caller before the write.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, user_id, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Content, p.UserID, p.CategoryID, now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *p
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.Post
	err := scanPost(r.db.QueryRowContext(ctx, selectPost+` WHERE p.id = ?`, id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectPost+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites title, content and category and bumps updated_at.
// Partial updates are resolved by the caller, which loads the post
// first and only replaces the fields present in the request.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, category_id = ?, updated_at = ? WHERE id = ?`,
		p.Title, p.Content, p.CategoryID, now, p.ID)
	if err == nil {
		p.UpdatedAt = now
	}
	return err
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}
