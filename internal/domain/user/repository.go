package user

import "context"

// Repository defines data access for users.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByRoles returns users whose role is in the given set. Used for
	// notification fan-out to approvers.
	ListByRoles(ctx context.Context, roles []Role) ([]User, error)

	// ListNonAdmin returns all non-admin users ordered by name.
	ListNonAdmin(ctx context.Context) ([]User, error)

	// ListTeam returns users reporting to the given manager.
	ListTeam(ctx context.Context, managerID string) ([]User, error)

	Update(ctx context.Context, u User) error
}

// Service defines user provisioning and profile operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	UpdateProfile(ctx context.Context, actor Actor, id string, req UpdateProfileRequest) (UserResponse, error)
	Assign(ctx context.Context, actor Actor, id string, req AssignRequest) (UserResponse, error)
	ListUsers(ctx context.Context, actor Actor) ([]UserResponse, error)
}
