package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/apperr"
	"github.com/viktoryglory/blog-API/internal/auth"
	"github.com/viktoryglory/blog-API/models"
	"github.com/viktoryglory/blog-API/repository"
)

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// requireAdmin gates category mutations. Categories have no owner;
// the admin role is the only thing that matters here.
func requireAdmin(c *gin.Context) (*auth.Principal, error) {
	p, err := principal(c)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin {
		return nil, apperr.New(apperr.KindForbidden, "admin required")
	}
	return p, nil
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) createCategory(c *gin.Context) {
	if _, err := requireAdmin(c); err != nil {
		writeError(c, err)
		return
	}
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if req.Name == "" {
		writeError(c, apperr.New(apperr.KindValidation, "name is required"))
		return
	}
	ctx := c.Request.Context()
	existing, err := s.Categories.GetByName(ctx, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	if existing != nil {
		writeError(c, apperr.New(apperr.KindConflict, "category already exists"))
		return
	}
	created, err := s.Categories.Create(ctx, req.Name, req.Description)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			writeError(c, apperr.New(apperr.KindConflict, "category already exists"))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "category created successfully",
		"category": created,
	})
}

func (s *Server) updateCategory(c *gin.Context) {
	if _, err := requireAdmin(c); err != nil {
		writeError(c, err)
		return
	}
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	ctx := c.Request.Context()
	cat, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if cat == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "category not found"))
		return
	}
	if req.Name != nil {
		existing, err := s.Categories.GetByName(ctx, *req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		if existing != nil && existing.ID != id {
			writeError(c, apperr.New(apperr.KindConflict, "category name already exists"))
			return
		}
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if err := s.Categories.Update(ctx, cat); err != nil {
		if repository.IsUniqueViolation(err) {
			writeError(c, apperr.New(apperr.KindConflict, "category name already exists"))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "category updated successfully",
		"category": cat,
	})
}

func (s *Server) deleteCategory(c *gin.Context) {
	if _, err := requireAdmin(c); err != nil {
		writeError(c, err)
		return
	}
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx := c.Request.Context()
	cat, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if cat == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "category not found"))
		return
	}
	n, err := s.Categories.CountPosts(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if n > 0 {
		writeError(c, apperr.New(apperr.KindValidation, "cannot delete category with posts"))
		return
	}
	if err := s.Categories.Delete(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
