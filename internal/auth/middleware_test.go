package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/viktoryglory/blog-API/internal/testutil"
	"github.com/viktoryglory/blog-API/repository"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false}, // scheme is case-insensitive
		{"Bearer  abc ", "abc", false},
		{"", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"Basic abc", "", true},
	}
	for _, tc := range cases {
		got, err := bearerToken(tc.header)
		if tc.wantErr {
			require.Error(t, err, "header %q", tc.header)
			continue
		}
		require.NoError(t, err, "header %q", tc.header)
		require.Equal(t, tc.want, got)
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := testutil.OpenInMemoryDB(t, "authmw")
	users := repository.NewUserRepository(d)
	svc := NewService(users, testSecret, time.Hour)
	u := testutil.CreateUser(t, users, "alice", "a@x.com", "pw", false)

	r := gin.New()
	r.GET("/whoami", RequireAuth(svc), func(c *gin.Context) {
		p, ok := FromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "is_admin": p.IsAdmin})
	})

	get := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Valid token reaches the handler with the principal attached.
	tok := testutil.SignToken(t, testSecret, u.ID, false, time.Hour)
	w := get("Bearer " + tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, u.ID, body["user_id"])

	// Missing header, malformed header, bad signature, orphaned user.
	require.Equal(t, http.StatusUnauthorized, get("").Code)
	require.Equal(t, http.StatusUnauthorized, get("Basic "+tok).Code)
	require.Equal(t, http.StatusUnauthorized, get("Bearer garbage").Code)
	orphan := testutil.SignToken(t, testSecret, 9999, false, time.Hour)
	require.Equal(t, http.StatusUnauthorized, get("Bearer "+orphan).Code)

	// Expired token.
	expired := testutil.SignToken(t, testSecret, u.ID, false, -time.Minute)
	require.Equal(t, http.StatusUnauthorized, get("Bearer "+expired).Code)
}
