package repository

import (
	"context"

	"github.com/viktoryglory/blog-API/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
}

// CategoryRepositoryI defines operations on Category entities.
type CategoryRepositoryI interface {
	Create(ctx context.Context, name, description string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
	CountPosts(ctx context.Context, id int64) (int64, error)
}

// PostRepositoryI defines operations on Post entities.
type PostRepositoryI interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepositoryI defines operations on Comment entities.
type CommentRepositoryI interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}
