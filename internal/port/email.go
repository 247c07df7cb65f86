package port

import (
	"context"

	"leskita/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	// SendPaymentReminder notifies a student (or their guardian) about a
	// pending or overdue payment.
	SendPaymentReminder(ctx context.Context, toEmail, toName string, payment *domain.PaymentRecord) error
}
