package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "stockroom/internal/errors"
)

// ContextKey is the echo context key holding *Claims on protected routes.
const ContextKey = "user"

// Middleware returns the bearer-token gate. It validates the token with
// jwtService, rejects revoked tokens and stores the claims under ContextKey.
func Middleware(jwtService *JWTService, tokenStore TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := tokenStore.IsAccessTokenRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if revoked {
				return nil, apperrors.ErrRevokedToken
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// ParseTokenFunc only yields domain errors; anything else
			// comes from the header extractor.
			switch {
			case errors.Is(err, apperrors.ErrExpiredToken):
				return apperrors.ErrExpiredToken
			case errors.Is(err, apperrors.ErrRevokedToken):
				return apperrors.ErrRevokedToken
			case errors.Is(err, apperrors.ErrInvalidToken):
				return apperrors.ErrInvalidToken
			default:
				return apperrors.ErrMissingToken
			}
		},
	})
}

// ClaimsFromContext returns the claims stored by Middleware.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}
