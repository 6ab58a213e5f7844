package auth

import (
	"math"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestSubjectRoundTrip(t *testing.T) {
	ids := []int64{1, 2, 42, 1000, 987654321, math.MaxInt64}
	for _, id := range ids {
		got, err := DecodeSubject(EncodeSubject(id))
		if err != nil {
			t.Fatalf("decode subject for %d: %v", id, err)
		}
		if got != id {
			t.Fatalf("round trip mismatch: %d != %d", got, id)
		}
	}
}

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken(testSecret, time.Hour, 42, true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, isAdmin, err := parseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 || !isAdmin {
		t.Fatalf("unexpected claims: id=%d isAdmin=%v", id, isAdmin)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := IssueToken(testSecret, time.Hour, 7, false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := parseToken(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := IssueToken(testSecret, -time.Minute, 7, false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := parseToken(tok, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseToken_NonNumericSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "not-a-number",
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, _, err := parseToken(tok, testSecret); err == nil {
		t.Fatal("expected error for non-numeric subject")
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "1",
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, _, err := parseToken(tok, testSecret); err == nil {
		t.Fatal("expected error for HS512-signed token")
	}
}

func TestIssueToken_EmptySecret(t *testing.T) {
	if _, err := IssueToken("", time.Hour, 1, false); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, _, err := parseToken("whatever", ""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
