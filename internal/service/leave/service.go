package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/email"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/keylock"
)

// policies is static reference data; nothing in the review flow reads it.
var policies = []leave.Policy{
	{LeaveType: "annual", Name: "Annual Leave", Description: "Regular annual leave entitlement", DefaultDays: 12, MinDays: 1, MaxDays: 20, RequiresApproval: true, RequiresDocument: false, ApprovalLevels: []string{"manager", "hr"}},
	{LeaveType: "sick", Name: "Sick Leave", Description: "Paid sick leave", DefaultDays: 12, MinDays: 1, MaxDays: 14, RequiresApproval: true, RequiresDocument: true, ApprovalLevels: []string{"manager"}},
	{LeaveType: "personal", Name: "Personal Leave", Description: "Leave for personal matters", DefaultDays: 12, MinDays: 1, MaxDays: 12, RequiresApproval: true, RequiresDocument: false, ApprovalLevels: []string{"manager"}},
	{LeaveType: "emergency", Name: "Emergency Leave", Description: "Leave for urgent family or personal emergencies", DefaultDays: 6, MinDays: 1, MaxDays: 6, RequiresApproval: true, RequiresDocument: false, ApprovalLevels: []string{"manager"}},
	{LeaveType: "maternity", Name: "Maternity Leave", Description: "Statutory maternity leave", DefaultDays: 90, MinDays: 1, MaxDays: 90, RequiresApproval: true, RequiresDocument: true, ApprovalLevels: []string{"manager", "hr"}},
	{LeaveType: "paternity", Name: "Paternity Leave", Description: "Statutory paternity leave", DefaultDays: 14, MinDays: 1, MaxDays: 14, RequiresApproval: true, RequiresDocument: true, ApprovalLevels: []string{"manager", "hr"}},
}

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	tx       leave.Transactor
	notifier notification.Service
	mailer   email.EmailService
	locks    *keylock.KeyLock
}

// NewLeaveService wires the leave workflow. mailer may be nil when SMTP is
// not configured; decision emails are then skipped.
func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	tx leave.Transactor,
	notifier notification.Service,
	mailer email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		tx:                     tx,
		notifier:               notifier,
		mailer:                 mailer,
		locks:                  keylock.New(),
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Duration:    req.Duration,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      leave.StatusPending,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	_, _ = s.notifier.Notify(ctx, created.EmployeeID,
		"Leave Request Submitted",
		fmt.Sprintf("Your %s leave request for %s to %s has been submitted and is pending review.", created.Type, created.StartDate, created.EndDate),
		notification.TypeLeave)

	return leave.ToResponse(created), nil
}

// Review implements leave.LeaveService. Approval debits the matching balance;
// the debit and the status flip happen under the submitter's lock so a second
// reviewer cannot double-debit.
func (s *LeaveServiceImpl) Review(ctx context.Context, id int64, req leave.ReviewRequest, reviewer string) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	unlock := s.locks.Lock(request.EmployeeID)
	defer unlock()

	// Re-read under the lock; a concurrent review may have landed first.
	request, err = s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyReviewed
	}

	decision := leave.LeaveRequestStatus(req.Status)

	emp, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if decision == leave.StatusApproved {
		remaining, ok := emp.BalanceFor(request.Type)
		if !ok {
			return leave.LeaveRequestResponse{}, employee.ErrUnknownLeaveType
		}
		if remaining < request.DaysRequested() {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	now := time.Now().UTC()
	request.Status = decision
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewer
	request.Comments = req.Comments

	// Debit and status flip commit together.
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if decision == leave.StatusApproved {
			remaining, _ := emp.BalanceFor(request.Type)
			emp.SetBalanceFor(request.Type, remaining-request.DaysRequested())
			if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
				return fmt.Errorf("failed to debit leave balance: %w", err)
			}
		}
		if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyDecision(ctx, request)
	s.emailDecision(request, emp)

	return leave.ToResponse(request), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// GetBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID int64) ([]leave.Balance, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	balances := make([]leave.Balance, 0, len(leave.LeaveTypes))
	for _, leaveType := range leave.LeaveTypes {
		remaining, _ := emp.BalanceFor(leaveType)
		balances = append(balances, leave.Balance{
			EmployeeID: employeeID,
			LeaveType:  leaveType,
			Remaining:  remaining,
		})
	}
	return balances, nil
}

// GetPolicies implements leave.LeaveService.
func (s *LeaveServiceImpl) GetPolicies(ctx context.Context) []leave.Policy {
	return policies
}

func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	var title, message string
	switch request.Status {
	case leave.StatusApproved:
		title = "Leave Request Approved"
		message = fmt.Sprintf("Your %s leave request for %s to %s has been approved.", request.Type, request.StartDate, request.EndDate)
	case leave.StatusRejected:
		title = "Leave Request Rejected"
		message = fmt.Sprintf("Your %s leave request for %s to %s has been rejected.", request.Type, request.StartDate, request.EndDate)
	case leave.StatusCancelled:
		title = "Leave Request Cancelled"
		message = fmt.Sprintf("Your %s leave request for %s to %s has been cancelled.", request.Type, request.StartDate, request.EndDate)
	default:
		return
	}
	if request.Comments != nil && *request.Comments != "" {
		message = fmt.Sprintf("%s Comments: %s", message, *request.Comments)
	}
	_, _ = s.notifier.Notify(ctx, request.EmployeeID, title, message, notification.TypeLeave)
}

func (s *LeaveServiceImpl) emailDecision(request leave.LeaveRequest, emp employee.Employee) {
	if s.mailer == nil {
		return
	}
	_ = s.mailer.SendLeaveDecision(emp.Email, emp.Name, request.Type, request.StartDate, request.EndDate, string(request.Status), request.Comments)
}
