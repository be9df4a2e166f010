package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stockroom/internal/errors"
)

type revokedSet map[string]bool

func (s revokedSet) RevokeAccessToken(_ context.Context, tokenID string, _ time.Duration) error {
	s[tokenID] = true
	return nil
}

func (s revokedSet) IsAccessTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	return s[tokenID], nil
}

func TestMiddleware(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(clock)
	revoked := revokedSet{}

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)
	revokedToken, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(revokedToken)
	require.NoError(t, err)
	require.NoError(t, revoked.RevokeAccessToken(context.Background(), claims.ID, time.Minute))

	tests := []struct {
		name    string
		header  string
		at      time.Time
		wantErr error
	}{
		{name: "valid token", header: "Bearer " + token, at: issuedAt},
		{name: "missing header", header: "", at: issuedAt, wantErr: apperrors.ErrMissingToken},
		{name: "wrong scheme", header: "Basic " + token, at: issuedAt, wantErr: apperrors.ErrMissingToken},
		{name: "garbage token", header: "Bearer abc.def.ghi", at: issuedAt, wantErr: apperrors.ErrInvalidToken},
		{name: "expired token", header: "Bearer " + token, at: issuedAt.Add(10 * time.Minute), wantErr: apperrors.ErrExpiredToken},
		{name: "revoked token", header: "Bearer " + revokedToken, at: issuedAt, wantErr: apperrors.ErrRevokedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = tt.at

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var got *Claims
			h := Middleware(svc, revoked)(func(c echo.Context) error {
				var ok bool
				got, ok = ClaimsFromContext(c)
				require.True(t, ok)
				return c.NoContent(http.StatusOK)
			})

			err := h(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, got)
			assert.Equal(t, uint(42), got.UserID)
		})
	}
}

func TestClaimsFromContext_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	claims, ok := ClaimsFromContext(c)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestTokenStore_NilCacheNeverRevokes(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.RevokeAccessToken(ctx, "jti", time.Minute))
	revoked, err := store.IsAccessTokenRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
