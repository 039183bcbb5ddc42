package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avoronov/linkvault/internal/server/auth"
)

func TestRequireAuth_RejectsEveryTokenFailureTheSameWay(t *testing.T) {
	s := newTestServer(t)

	token := signup(t, s, "a@x.com", "pw")

	expired, err := auth.GenerateToken("u-1", []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	wrongSecret, err := auth.GenerateToken("u-1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	unknownSubject, err := auth.GenerateToken("u-404", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + wrongSecret},
		{name: "unknown subject", header: "Bearer " + unknownSubject},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := recordRequest(s, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Body.String(), "unauthenticated",
				"all failure modes must answer with the same message")
		})
	}

	// the valid token still works after the failures above
	rec := doJSON(t, s, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_GuardsEveryProtectedRoute(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users"},
		{http.MethodGet, "/bookmarks"},
		{http.MethodPost, "/bookmarks"},
		{http.MethodGet, "/bookmarks/b-1"},
		{http.MethodPatch, "/bookmarks/b-1"},
		{http.MethodDelete, "/bookmarks/b-1"},
	}

	for _, r := range routes {
		rec := doJSON(t, s, r.method, r.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must require auth", r.method, r.path)
	}
}
