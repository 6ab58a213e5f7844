package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/apperr"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	u, err := s.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"user":    u,
	})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	token, u, err := s.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "login successful",
		"access_token": token,
		"user":         u,
	})
}

func (s *Server) profile(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}
	u, err := s.Users.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	if u == nil {
		writeError(c, apperr.New(apperr.KindNotFound, "user not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
