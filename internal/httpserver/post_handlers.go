package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/apperr"
	"github.com/viktoryglory/blog-API/models"
)

type createPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int64  `json:"category_id"`
}

// updatePostRequest uses pointers so only fields present in the body
// overwrite the stored post.
type updatePostRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"category_id"`
}

func (s *Server) listPosts(c *gin.Context) {
	posts, err := s.Posts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) getPost(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	p, err := s.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if p == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "post not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (s *Server) createPost(c *gin.Context) {
	pr, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if req.Title == "" || req.Content == "" || req.CategoryID == 0 {
		writeError(c, apperr.New(apperr.KindValidation, "title, content, and category_id are required"))
		return
	}
	ctx := c.Request.Context()
	cat, err := s.Categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	if cat == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "category not found"))
		return
	}
	created, err := s.Posts.Create(ctx, &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		UserID:     pr.UserID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	// Re-read for the joined author/category names.
	full, err := s.Posts.GetByID(ctx, created.ID)
	if err != nil || full == nil {
		full = created
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "post created successfully",
		"post":    full,
	})
}

func (s *Server) updatePost(c *gin.Context) {
	pr, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "post not found"))
		return
	}
	if !canMutate(pr, post.UserID) {
		writeError(c, apperr.New(apperr.KindForbidden, "unauthorized"))
		return
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		cat, err := s.Categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			writeError(c, err)
			return
		}
		if cat == nil {
			writeError(c, apperr.New(apperr.KindNotFound, "category not found"))
			return
		}
		post.CategoryID = *req.CategoryID
	}
	if err := s.Posts.Update(ctx, post); err != nil {
		writeError(c, err)
		return
	}
	full, err := s.Posts.GetByID(ctx, id)
	if err != nil || full == nil {
		full = post
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "post updated successfully",
		"post":    full,
	})
}

func (s *Server) deletePost(c *gin.Context) {
	pr, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "post not found"))
		return
	}
	if !canMutate(pr, post.UserID) {
		writeError(c, apperr.New(apperr.KindForbidden, "unauthorized"))
		return
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}
