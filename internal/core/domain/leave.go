package domain

import (
	"errors"
	"time"
)

// LeaveStatus represents the lifecycle state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

var ErrLeaveNotFound = errors.New("leave request not found")
var ErrLeaveNotPending = errors.New("leave request already decided")
var ErrInvalidLeaveRange = errors.New("invalid leave date range")

// LeaveRequest is a request for days off, decided by an HR manager or admin.
type LeaveRequest struct {
	ID         string      `json:"id"`
	CompanyID  string      `json:"company_id"`
	EmployeeID string      `json:"employee_id"`
	Type       string      `json:"type"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Days       int         `json:"days"`
	Status     LeaveStatus `json:"status"`
	Reason     string      `json:"reason,omitempty"`
	DecidedBy  string      `json:"decided_by,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// LeaveDays returns the inclusive number of calendar days between start and
// end, or 0 when the range is inverted.
func LeaveDays(start, end time.Time) int {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
