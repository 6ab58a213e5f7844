package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/apperr"
	"github.com/viktoryglory/blog-API/models"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) listComments(c *gin.Context) {
	postID, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "post not found"))
		return
	}
	comments, err := s.Comments.ListByPost(ctx, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{
		"post_id":  postID,
		"comments": comments,
	})
}

func (s *Server) createComment(c *gin.Context) {
	pr, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}
	postID, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if req.Content == "" {
		writeError(c, apperr.New(apperr.KindValidation, "content is required"))
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "post not found"))
		return
	}
	created, err := s.Comments.Create(ctx, &models.Comment{
		Content: req.Content,
		UserID:  pr.UserID,
		PostID:  postID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	full, err := s.Comments.GetByID(ctx, created.ID)
	if err != nil || full == nil {
		full = created
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "comment created successfully",
		"comment": full,
	})
}

func (s *Server) deleteComment(c *gin.Context) {
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
	comment, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if comment == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "comment not found"))
		return
	}
	if !canMutate(pr, comment.UserID) {
		writeError(c, apperr.New(apperr.KindForbidden, "unauthorized"))
		return
	}
	if err := s.Comments.Delete(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
