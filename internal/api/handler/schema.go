package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type employeeRequest struct {
	FirstName  string  `json:"first_name"  validate:"required"`
	LastName   string  `json:"last_name"   validate:"required"`
	Email      string  `json:"email"       validate:"required,email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	HireDate   string  `json:"hire_date"   validate:"omitempty,datetime=2006-01-02"`
	BaseSalary float64 `json:"base_salary" validate:"required,gt=0"`
}

type leaveRequestBody struct {
	Type      string `json:"type"       validate:"required,oneof=vacation sick personal unpaid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
}

type leaveDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type payrollRunRequest struct {
	Period string `json:"period" validate:"required"`
}
