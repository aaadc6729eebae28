package domain

import (
	"errors"
	"regexp"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid payroll period")

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidPeriod reports whether period is a YYYY-MM payroll period.
func ValidPeriod(period string) bool {
	return periodPattern.MatchString(period)
}

// Payslip is one employee's pay for one period. One payslip exists per
// (employee, period); re-running a period overwrites it.
type Payslip struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	Period      string    `json:"period"` // YYYY-MM
	Gross       float64   `json:"gross"`
	Deductions  float64   `json:"deductions"`
	Net         float64   `json:"net"`
	GeneratedAt time.Time `json:"generated_at"`
}
