package testutil

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/viktoryglory/blog-API/internal/db"
	"github.com/viktoryglory/blog-API/models"
	"github.com/viktoryglory/blog-API/repository"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The DB is closed automatically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared-cache memory database so multiple connections see the same DB.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// CreateUser inserts a user with a bcrypt-hashed password and returns it.
func CreateUser(t *testing.T, users *repository.UserRepository, username, email, password string, isAdmin bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	u, err := users.Create(ctx, username, email, string(hash), isAdmin)
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// SignToken returns a signed HS256 JWT with the claims the app uses:
// a string-encoded user id subject and an is_admin claim.
func SignToken(t *testing.T, secret string, userID int64, isAdmin bool, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"is_admin": isAdmin,
		"iat":      jwt.NewNumericDate(now),
		"exp":      jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
