package domain

import (
	"context"
	"errors"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

type Service interface {
	// Login verifies credentials and mints a session token. Attempts are
	// rate limited per username.
	Login(context.Context, LoginRequest) (LoginResponse, error)

	// Resolve maps a bearer token to the identity it represents.
	Resolve(ctx context.Context, token string) (Identity, error)

	Logout(ctx context.Context, token string) error
}

var (
	ErrBadCredentials  = errors.New("bad_credentials")
	ErrAccountDisabled = errors.New("account_disabled")
	ErrSessionExpired  = errors.New("session_expired")
	ErrTooManyAttempts = errors.New("too_many_attempts")
)
