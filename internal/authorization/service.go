package authorization

import (
	"context"
	"errors"
)

type Service interface {
	// Authorize checks whether the given role may perform action on object.
	Authorize(ctx context.Context, role string, object string, action string) error
}

var (
	ErrInvalidRole   = errors.New("invalid_role")
	ErrInvalidObject = errors.New("invalid_object")
	ErrInvalidAction = errors.New("invalid_action")
	ErrForbidden     = errors.New("forbidden")
)
