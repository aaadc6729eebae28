package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// In-memory stubs shared by the service tests.

type stubAuthRepo struct {
	mu     sync.Mutex
	seq    int
	users  map[string]*domain.User // by id
	emails map[string]string       // email -> id
	repo   *stubEmployeeRepo       // receives bootstrap employees when set
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User), emails: make(map[string]string)}
}

func (r *stubAuthRepo) nextID(prefix string) string {
	r.seq++
	return prefix + "_" + strconv.Itoa(r.seq)
}

func (r *stubAuthRepo) ProvisionTenant(_ context.Context, company *domain.Company, user *domain.User, employee *domain.Employee) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emails[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := *user
	created.ID = r.nextID("user")
	created.CompanyID = r.nextID("company")
	_ = company
	r.users[created.ID] = &created
	r.emails[created.Email] = created.ID
	if r.repo != nil {
		bootstrap := *employee
		bootstrap.CompanyID = created.CompanyID
		bootstrap.UserID = created.ID
		_, _ = r.repo.Create(context.Background(), &bootstrap)
	}
	clone := created
	return &clone, nil
}

func (r *stubAuthRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *r.users[id]
	return &clone, nil
}

func (r *stubAuthRepo) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) DeactivateUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = false
	return nil
}

func (r *stubAuthRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		delete(r.emails, u.Email)
		delete(r.users, id)
	}
}

type stubEmployeeRepo struct {
	mu        sync.Mutex
	seq       int
	employees map[string]*domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *e
	created.ID = "emp_" + strconv.Itoa(r.seq)
	r.employees[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, companyID, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByUserID(_ context.Context, companyID, userID string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.CompanyID == companyID && e.UserID == userID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmployeeRepo) ListActiveByCompany(_ context.Context, companyID string) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID && e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.employees[e.ID]
	if !ok || stored.CompanyID != e.CompanyID {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	r.employees[e.ID] = &clone
	out := clone
	return &out, nil
}

type stubAttendanceRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]*domain.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]*domain.Attendance)}
}

func (r *stubAttendanceRepo) Create(_ context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *a
	created.ID = "att_" + strconv.Itoa(r.seq)
	r.records[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubAttendanceRepo) FindOpen(_ context.Context, companyID, employeeID, date string) (*domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.records {
		if a.CompanyID == companyID && a.EmployeeID == employeeID && a.Date == date && a.ClockOut == nil {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubAttendanceRepo) Update(_ context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[a.ID]; !ok {
		return nil, domain.ErrNotClockedIn
	}
	clone := *a
	r.records[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAttendanceRepo) ListByEmployee(_ context.Context, companyID, employeeID string) ([]domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Attendance
	for _, a := range r.records {
		if a.CompanyID == companyID && a.EmployeeID == employeeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubLeaveRepo struct {
	mu       sync.Mutex
	seq      int
	requests map[string]*domain.LeaveRequest
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{requests: make(map[string]*domain.LeaveRequest)}
}

func (r *stubLeaveRepo) Create(_ context.Context, l *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *l
	created.ID = "leave_" + strconv.Itoa(r.seq)
	r.requests[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubLeaveRepo) FindByID(_ context.Context, companyID, id string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.requests[id]
	if !ok || l.CompanyID != companyID {
		return nil, domain.ErrLeaveNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeaveRepo) ListByCompany(_ context.Context, companyID string) ([]domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LeaveRequest
	for _, l := range r.requests {
		if l.CompanyID == companyID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, companyID, employeeID string) ([]domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LeaveRequest
	for _, l := range r.requests {
		if l.CompanyID == companyID && l.EmployeeID == employeeID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) Update(_ context.Context, l *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[l.ID]
	if !ok || stored.CompanyID != l.CompanyID {
		return nil, domain.ErrLeaveNotFound
	}
	clone := *l
	r.requests[l.ID] = &clone
	out := clone
	return &out, nil
}

type stubPayrollRepo struct {
	mu       sync.Mutex
	seq      int
	payslips map[string]*domain.Payslip // employeeID|period
}

func newStubPayrollRepo() *stubPayrollRepo {
	return &stubPayrollRepo{payslips: make(map[string]*domain.Payslip)}
}

// Upsert mirrors the store contract: the first write assigns an id, a replay
// replaces the fields but keeps the id, and the returned payslip always
// carries it.
func (r *stubPayrollRepo) Upsert(_ context.Context, p *domain.Payslip) (*domain.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := p.EmployeeID + "|" + p.Period
	clone := *p
	if existing, ok := r.payslips[key]; ok {
		clone.ID = existing.ID
	} else {
		r.seq++
		clone.ID = "slip_" + strconv.Itoa(r.seq)
	}
	r.payslips[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubPayrollRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Payslip
	for _, p := range r.payslips {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) ListByEmployee(_ context.Context, companyID, employeeID string) ([]domain.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Payslip
	for _, p := range r.payslips {
		if p.CompanyID == companyID && p.EmployeeID == employeeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]bool)}
}

func (s *stubRevoker) Revoke(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[userID] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[userID], nil
}

type stubEnqueuer struct {
	mu   sync.Mutex
	jobs []ports.PayrollJob
}

func (s *stubEnqueuer) Enqueue(job ports.PayrollJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}
