package auth

import (
	"context"
	"time"

	"github.com/viktoryglory/blog-API/internal/apperr"
	"github.com/viktoryglory/blog-API/models"
	"github.com/viktoryglory/blog-API/repository"
)

// Service registers accounts, authenticates credentials and resolves
// bearer tokens into principals. All dependencies are injected.
type Service struct {
	users  repository.UserRepositoryI
	secret string
	ttl    time.Duration
}

func NewService(users repository.UserRepositoryI, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: secret, ttl: ttl}
}

// Register creates a new non-admin account. Username and email must
// be unused; duplicates are pre-checked for a precise message and
// backstopped by the store's UNIQUE constraints.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.New(apperr.KindValidation, "username, email, and password are required")
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "username already exists")
	}
	existing, err = s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "email already exists")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, username, email, hash, false)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.New(apperr.KindConflict, "username or email already exists")
		}
		return nil, err
	}
	return u, nil
}

// Authenticate verifies the credentials and issues a signed token
// whose subject is the user's ID. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, apperr.New(apperr.KindValidation, "username and password are required")
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !CheckPassword(u.PasswordHash, password) {
		return "", nil, apperr.New(apperr.KindAuth, "invalid username or password")
	}
	token, err := IssueToken(s.secret, s.ttl, u.ID, u.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Resolve verifies a token and returns the caller's principal. The
// admin flag comes from the current user row, so a role change takes
// effect immediately even for tokens issued before it.
func (s *Service) Resolve(ctx context.Context, token string) (*Principal, error) {
	id, _, err := parseToken(token, s.secret)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindAuth, "invalid or expired token", err)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.New(apperr.KindAuth, "unknown user")
	}
	return &Principal{UserID: u.ID, IsAdmin: u.IsAdmin}, nil
}
