package employee

import (
	"strings"
	"time"
)

// RoleManager is the distinguished role value that grants access to the
// review endpoints. Matching is case-insensitive.
const RoleManager = "Manager"

type Employee struct {
	ID           string
	Name         string
	Role         string
	Manager      *string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) IsManager() bool {
	return strings.EqualFold(e.Role, RoleManager)
}
