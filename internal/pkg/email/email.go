package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/config"
	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/payslip"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendSettlementDigest(to string, batch payroll.BatchResult) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type digestRow struct {
	WorkerName     string
	WorkDays       int
	BasePay        string
	Commission     string
	Transportation string
	TotalPay       string
}

type digestEmailData struct {
	Year        int
	Month       int
	WorkerCount int
	Rows        []digestRow
	Failures    []payroll.Failure
}

// SendSettlementDigest mails the operator the month's settlement table.
func (s *emailServiceImpl) SendSettlementDigest(to string, batch payroll.BatchResult) error {
	data := digestEmailData{
		Year:        batch.Year,
		Month:       batch.Month,
		WorkerCount: len(batch.Payrolls),
		Failures:    batch.Failures,
	}
	for _, p := range batch.Payrolls {
		data.Rows = append(data.Rows, digestRow{
			WorkerName:     p.WorkerName,
			WorkDays:       p.WorkDays,
			BasePay:        payslip.Won(p.BasePay),
			Commission:     payslip.Won(p.Commission),
			Transportation: payslip.Won(p.Transportation),
			TotalPay:       payslip.Won(p.TotalPay),
		})
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "settlement_digest.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("%d년 %d월 정산 결과", batch.Year, batch.Month)
	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
