package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/intek-hris/attendance-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService defines the interface for sending emails
type EmailService interface {
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, comments *string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	dialer    *gomail.Dialer
	templates *template.Template
}

// NewEmailService creates a new email service instance. It returns nil when
// SMTP is not configured so callers can wire the service optionally.
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		templates: tmpl,
	}, nil
}

type leaveDecisionEmailData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Decision     string
	Comments     string
}

// SendLeaveDecision emails the submitter about a leave review outcome.
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, comments *string) error {
	data := leaveDecisionEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Decision:     decision,
	}
	if comments != nil {
		data.Comments = *comments
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Leave request %s", decision))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		slog.Error("failed to send leave decision email", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
