// Package seed bootstraps the first admin account on an empty install.
package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/auth/password"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	"gorm.io/gorm"
)

// EnsureAdmin creates an "admin" account when the employees table is
// empty. With no password configured nothing is created, so a fresh
// deployment never ships a known default credential.
func EnsureAdmin(conn *gorm.DB, genID *snowflake.Node, adminPassword string) (bool, error) {
	if adminPassword == "" {
		return false, nil
	}

	var count int64
	if err := conn.Model(&employeedomain.Employee{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	admin := employeedomain.Employee{
		ID:           genID.Generate(),
		Name:         "Administrator",
		Username:     "admin",
		Role:         employeedomain.RoleAdmin,
		Status:       employeedomain.StatusActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := conn.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
