package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func protected(t *testing.T) (http.Handler, *Identity) {
	t.Helper()
	var seen Identity
	h := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestMiddleware_ValidToken(t *testing.T) {
	h, seen := protected(t)
	token := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", ExpiresAt: time.Now().Add(time.Hour).Unix()},
		Email:          "maria@example.com",
		Role:           "VENDOR",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, Identity{ID: "u1", Email: "maria@example.com", Role: "VENDOR"}, *seen)
}

func TestMiddleware_MissingToken(t *testing.T) {
	h, _ := protected(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	h, _ := protected(t)
	token := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_WrongSecret(t *testing.T) {
	h, _ := protected(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := Middleware(testSecret)(RequireRole("ADMIN")(inner))

	vendorToken := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", ExpiresAt: time.Now().Add(time.Hour).Unix()},
		Role:           "VENDOR",
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+vendorToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", ExpiresAt: time.Now().Add(time.Hour).Unix()},
		Role:           "ADMIN",
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
