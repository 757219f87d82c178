package user

import (
	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest carries profile fields the owner may change themselves.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// AssignRequest carries the admin-only role and manager mutations.
type AssignRequest struct {
	Role      *string `json:"role,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Role         Role    `json:"role"`
	ManagerID    *string `json:"manager_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}
