package auth

import "context"

type AuthService interface {
	// Login authenticates an employee by name. The credential scheme is a
	// placeholder: the password must equal the employee's name.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
