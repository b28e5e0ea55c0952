package user

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ROLE_ADMIN"
	RoleManager  Role = "ROLE_MANAGER"
	RoleEmployee Role = "ROLE_EMPLOYEE"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return r, nil
	}
	return "", ErrUnknownRole
}

// User is read-only for this service; account management lives elsewhere.
type User struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:64" json:"employee_id"`
	Name       string    `gorm:"column:name;size:255;not null" json:"name"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	Phone      string    `gorm:"column:phone;size:32" json:"phone"`
	Role       Role      `gorm:"column:role;size:32;not null" json:"role"`
	Department string    `gorm:"column:department;size:128" json:"department"`
	Status     string    `gorm:"column:status;size:16;not null;default:active" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
