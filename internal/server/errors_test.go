package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	authdomain "github.com/zagros/backoffice/internal/auth/domain"
	"github.com/zagros/backoffice/internal/authorization"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	"gorm.io/gorm"
)

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"bad credentials", authdomain.ErrBadCredentials, http.StatusUnauthorized},
		{"expired session", authdomain.ErrSessionExpired, http.StatusUnauthorized},
		{"disabled account", authdomain.ErrAccountDisabled, http.StatusForbidden},
		{"policy denied", authorization.ErrForbidden, http.StatusForbidden},
		{"rate limited", authdomain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"username taken", employeedomain.ErrUsernameTaken, http.StatusConflict},
		{"not draft", invoicedomain.ErrNotDraft, http.StatusConflict},
		{"closed invoice", invoicedomain.ErrAlreadyClosed, http.StatusConflict},
		{"customer missing", customerdomain.ErrNotFound, http.StatusNotFound},
		{"gorm missing", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"invalid id", invoicedomain.ErrInvalidID, http.StatusBadRequest},
		{"unknown", someInternalError(), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := mapError(tc.err)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestMapErrorValidationPayload(t *testing.T) {
	status, payload := mapError(invoicedomain.ErrInvalidItems)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "invalid_items", payload.Errors[0].Code)
		assert.Equal(t, "items", payload.Errors[0].Field)
	}
}

func TestMapErrorValidationErrorsPassThrough(t *testing.T) {
	status, payload := mapError(newValidationError("dueAt", "invalid_due_date", "invalid due date"))
	assert.Equal(t, http.StatusBadRequest, status)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "dueAt", payload.Errors[0].Field)
		assert.Equal(t, "invalid_due_date", payload.Errors[0].Code)
	}
}

func someInternalError() error {
	return gorm.ErrInvalidTransaction
}
