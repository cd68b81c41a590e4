package employee

import "context"

// EmployeeRepository is read-only: employee records are provisioned
// externally (or by the default roster seed) and never mutated here.
type EmployeeRepository interface {
	// GetByName retrieves an employee by display name, the directory's
	// unique lookup key.
	GetByName(ctx context.Context, name string) (Employee, error)

	// ListByManager retrieves all employees whose manager reference equals
	// managerName. Reports are direct only, no transitive resolution.
	ListByManager(ctx context.Context, managerName string) ([]Employee, error)
}
