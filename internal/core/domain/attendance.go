package domain

import (
	"errors"
	"time"
)

var ErrAlreadyClockedIn = errors.New("already clocked in")
var ErrNotClockedIn = errors.New("not clocked in")

// Attendance records one working day for an employee. ClockOut is nil while
// the day is still open.
type Attendance struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"` // YYYY-MM-DD, company-local day key
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	Hours      float64    `json:"hours"`
}

// DayKey formats t as the attendance day key.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
