package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrInvalidPasswordLength  = errors.New("password must be at least 6 characters")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrManagerAccessRequired  = errors.New("manager or admin access required")
	ErrInvalidRole            = errors.New("invalid role")
)
