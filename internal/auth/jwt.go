// Package auth implements the identity and access component: password
// hashing, bearer-token issuance and verification, and the resolution
// of a token back into the caller's identity and role.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. The subject holds the user ID encoded
// as a decimal string; is_admin records the role at issuance time and
// is informational only (authorization re-reads the store).
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// EncodeSubject converts a user ID into the token subject string.
func EncodeSubject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// DecodeSubject converts a token subject back into a user ID. The
// round-trip with EncodeSubject is exact for every int64.
func DecodeSubject(sub string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(sub), 10, 64)
	if err != nil {
		return 0, errors.New("subject is not a valid user id")
	}
	return id, nil
}

// IssueToken signs an HS256 token for the given user.
func IssueToken(secret string, ttl time.Duration, userID int64, isAdmin bool) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := &Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   EncodeSubject(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseToken validates the signature and expiry and returns the user
// ID from the subject plus the is_admin claim as issued.
func parseToken(tokenStr, secret string) (int64, bool, error) {
	if secret == "" {
		return 0, false, errors.New("jwt secret is empty")
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return 0, false, err
	}
	id, err := DecodeSubject(claims.Subject)
	if err != nil {
		return 0, false, err
	}
	return id, claims.IsAdmin, nil
}
