package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "courtcal/pkg/domain-errors"
	"courtcal/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) { return s.claims, s.err }

type stubRevocation struct {
	revoked bool
	err     error
}

func (s stubRevocation) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func newAuthedHandler(validator JWTValidator, checker TokenRevocationChecker) (http.Handler, *string) {
	var seenUserID string
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(validator, checker, logger)(next), &seenUserID
}

func doRequest(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reports/extract", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	valid := stubValidator{claims: &JWTClaims{UserID: "user-1", JTI: "jti-1"}}

	t.Run("valid token injects the principal", func(t *testing.T) {
		h, seenUserID := newAuthedHandler(valid, nil)
		rec := doRequest(h, "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", *seenUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newAuthedHandler(valid, nil)
		rec := doRequest(h, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		h, _ := newAuthedHandler(valid, nil)
		rec := doRequest(h, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		h, _ := newAuthedHandler(stubValidator{err: dErrors.New(dErrors.CodeUnauthorized, "bad")}, nil)
		rec := doRequest(h, "Bearer bad-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		h, _ := newAuthedHandler(valid, stubRevocation{revoked: true})
		rec := doRequest(h, "Bearer good-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "revoked")
	})

	t.Run("revocation check failure is an internal error", func(t *testing.T) {
		h, _ := newAuthedHandler(valid, stubRevocation{err: errors.New("redis down")})
		rec := doRequest(h, "Bearer good-token")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("nil revocation checker skips the check", func(t *testing.T) {
		h, seenUserID := newAuthedHandler(valid, nil)
		rec := doRequest(h, "Bearer good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", *seenUserID)
	})
}
