package dto

type RegisterCompanyDTO struct {
	Name      string `json:"name" binding:"required"`
	Domain    string `json:"domain" binding:"required"`
	Headcount int    `json:"headcount" binding:"required,min=1"`
	Industry  string `json:"industry" binding:"required"`
	Region    string `json:"region"`
}

type CompanyDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	InviteCode string `json:"invite_code"`
}

type RegisterCompanyResponseDTO struct {
	Company CompanyDTO `json:"company"`
}

type JoinCompanyResponseDTO struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
}

// EmployeeProgressDTO is one row of the manager's dashboard listing.
type EmployeeProgressDTO struct {
	EmployeeID         string `json:"employee_id"`
	EmployeeName       string `json:"employee_name"`
	Email              string `json:"email"`
	Status             string `json:"status"` // "not_started", "in_progress", "completed"
	CompletedQuestions int    `json:"completed_questions"`
	TotalQuestions     int    `json:"total_questions"`
}

type RemindEmployeeDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}
