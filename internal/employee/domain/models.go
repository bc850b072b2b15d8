package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role gates what an account may do. Enforcement lives in the
// authorization package.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleEmployee  Role = "employee"
	RoleCashier   Role = "cashier"
	RoleViewer    Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleEmployee, RoleCashier, RoleViewer:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

type Employee struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Username     string       `gorm:"not null;uniqueIndex" json:"username"`
	Email        string       `gorm:"type:text" json:"email,omitempty"`
	Phone        string       `gorm:"type:text" json:"phone,omitempty"`
	Role         Role         `gorm:"type:text;not null;default:'viewer'" json:"role"`
	Status       Status       `gorm:"type:text;not null;default:'active'" json:"status"`
	PasswordHash string       `gorm:"not null" json:"-"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Employee) TableName() string { return "employees" }
