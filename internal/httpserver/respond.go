package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/viktoryglory/blog-API/internal/apperr"
	"github.com/viktoryglory/blog-API/internal/auth"
)

// writeError translates a taxonomy error into its HTTP status and a
// client-safe message. Unclassified errors are logged and masked.
func writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindInternal {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(apperr.HTTPStatus(err), gin.H{"message": ae.Message})
}

// idParam parses the :id path segment as a positive integer.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.KindValidation, "invalid id")
	}
	return id, nil
}

// principal returns the caller attached by the auth middleware. It is
// only called from routes behind RequireAuth.
func principal(c *gin.Context) (*auth.Principal, error) {
	p, ok := auth.FromContext(c.Request.Context())
	if !ok {
		return nil, errors.New("no principal in request context")
	}
	return p, nil
}

// canMutate applies the ownership-or-admin rule for user-owned
// resources.
func canMutate(p *auth.Principal, ownerID int64) bool {
	return p.UserID == ownerID || p.IsAdmin
}
