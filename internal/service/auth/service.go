package auth

import (
	"context"
	"fmt"

	"github.com/timewise-hr/attendance-backend-go/internal/domain/auth"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(db *database.DB, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
//
// PLACEHOLDER CREDENTIAL SCHEME: the stored hash is bcrypt of the
// employee's own name, so the password must equal the name. Not an
// authentication design, only a stand-in until real credentials exist.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByName(ctx, req.Name)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.Service.GenerateAccessToken(emp.ID, emp.Name, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		ID:      emp.ID,
		Name:    emp.Name,
		Role:    emp.Role,
		Manager: emp.Manager,
		Token:   token,
	}, nil
}
