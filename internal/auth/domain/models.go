package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
)

// Session is an opaque bearer token tied to an employee account. Tokens are
// random uuids, never derived from credentials.
type Session struct {
	ID         snowflake.ID        `gorm:"primaryKey" json:"id"`
	Token      string              `gorm:"not null;uniqueIndex" json:"-"`
	EmployeeID snowflake.ID        `gorm:"not null;index" json:"employeeId"`
	Role       employeedomain.Role `gorm:"type:text;not null" json:"role"`
	ExpiresAt  time.Time           `gorm:"not null;index" json:"expiresAt"`
	CreatedAt  time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Session) TableName() string { return "sessions" }

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity is what the request middleware attaches to the gin context.
type Identity struct {
	EmployeeID snowflake.ID        `json:"employeeId"`
	Name       string              `json:"name"`
	Username   string              `json:"username"`
	Role       employeedomain.Role `json:"role"`
}
