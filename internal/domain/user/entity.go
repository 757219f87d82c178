package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages roles and manager assignments
	RoleManager  Role = "manager"  // Can approve leave and attendance corrections
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID             string
	Email          string
	FullName       string
	PasswordHash   *string
	Role           Role
	ManagerID      *string
	DepartmentID   *string
	OrganizationID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Actor is the resolved identity attached to every request by the auth layer.
// The workflow engines receive it as a parameter and never re-derive the role.
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin checks if the actor has admin privileges
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanApprove checks if the actor can resolve leave and correction requests
func (a Actor) CanApprove() bool {
	return a.Role == RoleManager || a.Role == RoleAdmin
}
