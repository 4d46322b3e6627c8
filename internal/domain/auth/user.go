package auth

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAgent      UserRole = "agent"
	RoleOperations UserRole = "operations"
	RoleSales      UserRole = "sales"
)

func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleAdmin, RoleAgent, RoleOperations, RoleSales:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(16);not null;default:'agent'"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	AgencyName   string     `json:"agency_name,omitempty"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Privileged reports whether the user can act on other users' bookings.
func (u *User) Privileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperations
}
