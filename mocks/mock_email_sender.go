package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPaymentReminder(ctx context.Context, toEmail, toName string, payment *domain.PaymentRecord) error {
	args := m.Called(ctx, toEmail, toName, payment)
	return args.Error(0)
}
