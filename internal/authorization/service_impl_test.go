package authorization

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	enforcer, err := NewEnforcer(conn)
	require.NoError(t, err)

	return NewService(Params{Log: zap.NewNop(), Enforcer: enforcer})
}

func TestRoleMatrix(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	cases := []struct {
		role    string
		object  string
		action  string
		allowed bool
	}{
		{"viewer", ObjectProduct, ActionRead, true},
		{"viewer", ObjectProduct, ActionWrite, false},
		{"viewer", ObjectInvoice, ActionDelete, false},

		{"cashier", ObjectInvoice, ActionRead, true},
		{"cashier", ObjectInvoice, ActionWrite, true},
		{"cashier", ObjectPayment, ActionWrite, true},
		{"cashier", ObjectProduct, ActionWrite, false},
		{"cashier", ObjectInvoice, ActionDelete, false},

		{"employee", ObjectProduct, ActionWrite, true},
		{"employee", ObjectExport, ActionExport, true},
		{"employee", ObjectProduct, ActionDelete, false},
		{"employee", ObjectEmployee, ActionRead, false},

		{"developer", ObjectProduct, ActionDelete, true},
		{"developer", ObjectExport, ActionExport, true},
		{"developer", ObjectEmployee, ActionWrite, false},

		{"admin", ObjectEmployee, ActionWrite, true},
		{"admin", ObjectEmployee, ActionDelete, true},
		{"admin", ObjectInvoice, ActionDelete, true},
	}

	for _, tc := range cases {
		err := svc.Authorize(ctx, tc.role, tc.object, tc.action)
		if tc.allowed {
			assert.NoErrorf(t, err, "%s %s %s", tc.role, tc.action, tc.object)
		} else {
			assert.ErrorIsf(t, err, ErrForbidden, "%s %s %s", tc.role, tc.action, tc.object)
		}
	}
}

func TestAuthorizeValidation(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Authorize(ctx, "", ObjectProduct, ActionRead), ErrInvalidRole)
	assert.ErrorIs(t, svc.Authorize(ctx, "admin", "", ActionRead), ErrInvalidObject)
	assert.ErrorIs(t, svc.Authorize(ctx, "admin", ObjectProduct, ""), ErrInvalidAction)
	assert.ErrorIs(t, svc.Authorize(ctx, "ghost", ObjectProduct, ActionRead), ErrForbidden)
}
