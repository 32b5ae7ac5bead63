package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// tokenClaims is the signed payload of a bearer credential.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

// CredentialVerifier checks HS256 bearer tokens against a shared secret.
type CredentialVerifier struct {
	secret []byte
	now    Clock
}

func NewCredentialVerifier(secret string, now Clock) *CredentialVerifier {
	if now == nil {
		now = time.Now
	}
	return &CredentialVerifier{secret: []byte(secret), now: now}
}

// Verify parses raw and returns its claims. Failures are *domain.AuthError of
// kind MalformedCredential or ExpiredCredential.
func (v *CredentialVerifier) Verify(raw string) (*domain.Claims, error) {
	if raw == "" {
		return nil, domain.ErrMissingCredential
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.Reject(domain.KindExpiredCredential, domain.ErrExpiredCredential.Message, err)
		}
		return nil, domain.Reject(domain.KindMalformedCredential, domain.ErrMalformedCredential.Message, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrMalformedCredential
	}

	out := &domain.Claims{Subject: claims.Subject, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// TokenIssuer signs credentials for authenticated accounts.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, now Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue returns a signed token for account and its expiry.
func (i *TokenIssuer) Issue(account *domain.Account) (string, time.Time, error) {
	issued := i.now()
	expires := issued.Add(i.ttl)
	claims := &tokenClaims{
		Email: account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}
