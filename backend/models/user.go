package models

import "time"

// Roles known to the platform. Staff roles get elevated access to
// batch-scoped content management.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleMentor
}

// User mirrors the account record of the external identity provider.
// The ID is whatever the provider issued; rows are upserted on every
// successful authentication and never hard-deleted.
type User struct {
	ID              string    `gorm:"primarykey" json:"id"`
	Email           *string   `gorm:"unique" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Role            string    `gorm:"default:student" json:"role"` // student, mentor, admin, manager
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type UpdateUserRoleInput struct {
	Role string `json:"role" validate:"required,oneof=student mentor admin manager"`
}
