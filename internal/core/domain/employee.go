package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is an HR record scoped to one company. UserID links the record to
// its login account; bootstrap and non-login employees leave it empty.
type Employee struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	UserID     string    `json:"user_id,omitempty"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Position   string    `json:"position,omitempty"`
	Department string    `json:"department,omitempty"`
	HireDate   time.Time `json:"hire_date"`
	BaseSalary float64   `json:"base_salary"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
