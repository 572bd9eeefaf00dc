package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// clockSkew is the tolerance applied when checking expiry
const clockSkew = 0 * time.Second

// TokenClaims represents the claims carried by a bearer token
type TokenClaims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenOptions struct {
	now func() time.Time
}

// TokenOption configures a token service
type TokenOption func(*tokenOptions)

// WithClock replaces time.Now for issuing and checking expiry
func WithClock(now func() time.Time) TokenOption {
	return func(o *tokenOptions) {
		o.now = now
	}
}

func applyTokenOptions(opts []TokenOption) tokenOptions {
	o := tokenOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// expired reports whether a token expiring at exp is no longer valid at now
func expired(now, exp time.Time) bool {
	return !now.Before(exp.Add(clockSkew))
}

// NewTokenService builds the token service selected by cfg.TokenFormat
func NewTokenService(cfg config.AuthConfig, opts ...TokenOption) (TokenService, error) {
	switch cfg.TokenFormat {
	case config.TokenFormatPaseto:
		svc, err := NewPasetoService(cfg.TokenKey(), cfg.TokenTTL, opts...)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case config.TokenFormatJWT:
		svc, err := NewJWTService(cfg.TokenKey(), cfg.TokenTTL, opts...)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unsupported token format %q", cfg.TokenFormat)
	}
}
