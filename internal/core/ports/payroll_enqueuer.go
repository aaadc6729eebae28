package ports

// PayrollEnqueuer hands payroll jobs to the background dispatcher.
type PayrollEnqueuer interface {
	Enqueue(job PayrollJob)
}
