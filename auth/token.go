package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lunaria-site/cms-backend/errs"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

const issuer = "lunaria-cms"

// TokenService issues and verifies signed, self-contained identity tokens.
// Tokens are stateless: there is no session table and no revocation list,
// so rotating the secret is the only way to invalidate outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue creates an HS256-signed token embedding the subject identity and
// an absolute expiry instant.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithExpiry(subject, time.Now().UTC().Add(s.ttl))
}

// IssueWithExpiry is Issue with a caller-chosen expiry instant.
func (s *TokenService) IssueWithExpiry(subject string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token and returns the
// embedded subject. Expired tokens fail with errs.ErrExpiredToken; a bad
// signature, wrong algorithm or missing subject fails with
// errs.ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError()
	}

	if !token.Valid || claims.Subject == "" {
		return "", errs.NewInvalidTokenError()
	}

	return claims.Subject, nil
}
