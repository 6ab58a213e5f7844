// Package httpserver exposes the blog over a JSON REST surface and
// applies the ownership-or-admin authorization policy on mutations.
package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/auth"
	"github.com/viktoryglory/blog-API/repository"
)

// Server bundles the dependencies behind the HTTP handlers.
type Server struct {
	Auth       *auth.Service
	Users      repository.UserRepositoryI
	Categories repository.CategoryRepositoryI
	Posts      repository.PostRepositoryI
	Comments   repository.CommentRepositoryI
}

func New(authSvc *auth.Service, users repository.UserRepositoryI, categories repository.CategoryRepositoryI,
	posts repository.PostRepositoryI, comments repository.CommentRepositoryI) *Server {
	return &Server{
		Auth:       authSvc,
		Users:      users,
		Categories: categories,
		Posts:      posts,
		Comments:   comments,
	}
}

// Router builds the gin engine with the full route table. Reads are
// public; every mutation goes through the auth middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/", s.index)
	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)
	r.GET("/posts", s.listPosts)
	r.GET("/posts/:id", s.getPost)
	r.GET("/posts/:id/comments", s.listComments)
	r.GET("/categories", s.listCategories)

	protected := r.Group("/")
	protected.Use(auth.RequireAuth(s.Auth))
	protected.GET("/auth/profile", s.profile)
	protected.POST("/posts", s.createPost)
	protected.PUT("/posts/:id", s.updatePost)
	protected.DELETE("/posts/:id", s.deletePost)
	protected.POST("/posts/:id/comments", s.createComment)
	protected.DELETE("/comments/:id", s.deleteComment)
	protected.POST("/categories", s.createCategory)
	protected.PUT("/categories/:id", s.updateCategory)
	protected.DELETE("/categories/:id", s.deleteCategory)

	return r
}

func (s *Server) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Blog API is running!"})
}
