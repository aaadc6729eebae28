package domain

import "time"

// Company is the tenant boundary. Every employee, attendance, leave, and
// payroll record belongs to exactly one company.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
