package noop

import (
	"context"
	"log"

	"leskita/internal/domain"
	"leskita/internal/port"
	"leskita/internal/report"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs reminders to stdout.
// Used in development and in environments without SES credentials.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendPaymentReminder(_ context.Context, toEmail, toName string, payment *domain.PaymentRecord) error {
	log.Printf("[NOOP EMAIL] Payment reminder for %s (%s): %s, status %s",
		toName, toEmail, report.FormatIDR(payment.Amount), payment.Status)
	return nil
}
