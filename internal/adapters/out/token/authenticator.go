// Package token implements the Authenticator port with HS256-signed JWTs.
// The credential embeds the principal's account id and role at issuance;
// the role is authoritative for the credential's whole lifetime.
package token

import (
	"fmt"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"
	"ewaste/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by a bearer credential.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthenticator signs and verifies bearer credentials with a shared
// HS256 secret.
type JWTAuthenticator struct {
	secret []byte
	ttl    time.Duration
}

var _ ports.Authenticator = (*JWTAuthenticator)(nil)

// NewJWTAuthenticator creates an authenticator with the given signing
// secret and token lifetime.
func NewJWTAuthenticator(secret string, ttl time.Duration) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}

	return &JWTAuthenticator{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// IssueToken signs a credential for the given principal.
func (a *JWTAuthenticator) IssueToken(principal account.Principal) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role: principal.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a credential and recovers its principal. Expired,
// malformed, or badly signed tokens all collapse into a
// CredentialIsInvalidError; the caller learns nothing about which check
// failed.
func (a *JWTAuthenticator) ParseToken(tokenStr string) (account.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return account.Principal{}, errs.NewCredentialIsInvalidErrorWithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return account.Principal{}, errs.NewCredentialIsInvalidError()
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return account.Principal{}, errs.NewCredentialIsInvalidErrorWithCause(err)
	}
	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Principal{}, errs.NewCredentialIsInvalidErrorWithCause(err)
	}

	principal, err := account.NewPrincipal(id, role)
	if err != nil {
		return account.Principal{}, errs.NewCredentialIsInvalidErrorWithCause(err)
	}

	return principal, nil
}
