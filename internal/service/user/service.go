package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo user.Repository
}

func NewService(repo user.Repository) user.Service {
	return &service{repo: repo}
}

// Register implements user.Service. New users always start as employees; role
// changes go through Assign.
func (s *service) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.repo.Create(ctx, user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// GetProfile implements user.Service.
func (s *service) GetProfile(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// UpdateProfile implements user.Service. Owners may edit their own profile;
// admins may edit anyone's.
func (s *service) UpdateProfile(ctx context.Context, actor user.Actor, id string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if actor.UserID != id && !actor.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.DepartmentID != nil {
		u.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(u), nil
}

// Assign implements user.Service. Role and manager assignment is admin-only.
func (s *service) Assign(ctx context.Context, actor user.Actor, id string, req user.AssignRequest) (user.UserResponse, error) {
	if !actor.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Role != nil {
		role := user.Role(*req.Role)
		switch role {
		case user.RoleAdmin, user.RoleManager, user.RoleEmployee:
			u.Role = role
		default:
			return user.UserResponse{}, user.ErrInvalidRole
		}
	}
	if req.ManagerID != nil {
		if _, err := s.repo.GetByID(ctx, *req.ManagerID); err != nil {
			return user.UserResponse{}, err
		}
		u.ManagerID = req.ManagerID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(u), nil
}

// ListUsers implements user.Service. Managers see their team, admins see all
// non-admin users.
func (s *service) ListUsers(ctx context.Context, actor user.Actor) ([]user.UserResponse, error) {
	if !actor.CanApprove() {
		return nil, user.ErrManagerAccessRequired
	}

	var (
		users []user.User
		err   error
	)
	if actor.IsAdmin() {
		users, err = s.repo.ListNonAdmin(ctx)
	} else {
		users, err = s.repo.ListTeam(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
		DepartmentID: u.DepartmentID,
	}
}
