package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zagros/backoffice/internal/auth/domain"
	"github.com/zagros/backoffice/internal/auth/password"
	authrepo "github.com/zagros/backoffice/internal/auth/repository"
	"github.com/zagros/backoffice/internal/config"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	employeerepo "github.com/zagros/backoffice/internal/employee/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&employeedomain.Employee{},
		&domain.Session{},
	))

	node, err := snowflake.NewNode(5)
	require.NoError(t, err)

	svc := New(Params{
		Config:    config.Config{SessionTTLMinutes: 60},
		DB:        conn,
		Log:       zap.NewNop(),
		GenID:     node,
		Sessions:  authrepo.Provide(),
		Employees: employeerepo.Provide(),
		Limiter:   nil, // no redis in tests, limiter allows everything
	})
	return svc, conn, node
}

func seedEmployee(t *testing.T, conn *gorm.DB, node *snowflake.Node, status employeedomain.Status) employeedomain.Employee {
	t.Helper()
	hash, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	employee := employeedomain.Employee{
		ID:           node.Generate(),
		Name:         "Dana Jalal",
		Username:     "dana",
		Role:         employeedomain.RoleCashier,
		Status:       status,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&employee).Error)
	return employee
}

func TestLoginAndResolve(t *testing.T) {
	svc, conn, node := setup(t)
	employee := seedEmployee(t, conn, node, employeedomain.StatusActive)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "Dana", // case-insensitive
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, employee.ID, resp.Identity.EmployeeID)
	assert.Equal(t, employeedomain.RoleCashier, resp.Identity.Role)

	identity, err := svc.Resolve(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "dana", identity.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, conn, node := setup(t)
	seedEmployee(t, conn, node, employeedomain.StatusActive)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "dana",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, conn, node := setup(t)
	seedEmployee(t, conn, node, employeedomain.StatusDisabled)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "dana",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestResolveExpiredSession(t *testing.T) {
	svc, conn, node := setup(t)
	employee := seedEmployee(t, conn, node, employeedomain.StatusActive)

	session := domain.Session{
		ID:         node.Generate(),
		Token:      "stale-token",
		EmployeeID: employee.ID,
		Role:       employee.Role,
		ExpiresAt:  time.Now().UTC().Add(-time.Minute),
		CreatedAt:  time.Now().UTC().Add(-2 * time.Hour),
	}
	require.NoError(t, conn.Create(&session).Error)

	_, err := svc.Resolve(context.Background(), "stale-token")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// Expired sessions are purged on touch.
	var count int64
	require.NoError(t, conn.Model(&domain.Session{}).Where("token = ?", "stale-token").Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogout(t *testing.T) {
	svc, conn, node := setup(t)
	seedEmployee(t, conn, node, employeedomain.StatusActive)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "dana",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.Resolve(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}
