package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByName implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, role, manager, password_hash, created_at, updated_at
		FROM employees
		WHERE name = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&emp.ID, &emp.Name, &emp.Role, &emp.Manager, &emp.PasswordHash,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

// ListByManager implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByManager(ctx context.Context, managerName string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, role, manager, password_hash, created_at, updated_at
		FROM employees
		WHERE manager = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, managerName)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by manager: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Role, &emp.Manager, &emp.PasswordHash,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
