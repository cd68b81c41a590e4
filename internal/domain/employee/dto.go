package employee

type EmployeeDetails struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Manager *string `json:"manager"`
}

func ToDetails(e Employee) EmployeeDetails {
	return EmployeeDetails{
		ID:      e.ID,
		Name:    e.Name,
		Role:    e.Role,
		Manager: e.Manager,
	}
}
