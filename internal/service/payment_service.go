package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leskita/internal/domain"
	"leskita/internal/port"
)

// CreatePaymentInput is the DTO for recording a payment.
type CreatePaymentInput struct {
	StudentID   *uuid.UUID           `json:"student_id"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time            `json:"payment_date" binding:"required"`
	DueDate     *time.Time           `json:"due_date"`
	Status      domain.PaymentStatus `json:"status"`
	Method      string               `json:"payment_method"`
	Notes       string               `json:"notes"`
}

// UpdatePaymentInput is the DTO for updating a payment.
type UpdatePaymentInput struct {
	StudentID   *uuid.UUID            `json:"student_id"`
	Amount      *float64              `json:"amount"`
	PaymentDate *time.Time            `json:"payment_date"`
	DueDate     *time.Time            `json:"due_date"`
	Status      *domain.PaymentStatus `json:"status"`
	Method      *string               `json:"payment_method"`
	Notes       *string               `json:"notes"`
}

// PaymentService defines the payment management contract.
type PaymentService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentRecord, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.PaymentRecord, int, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// SendReminder emails the student's contact about a pending or overdue
	// payment. Paid payments and payments without a reachable student are
	// rejected with domain.ErrReminderNotEligible.
	SendReminder(ctx context.Context, tenantID, id uuid.UUID) error
}

type paymentService struct {
	repo        port.PaymentRepository
	studentRepo port.StudentRepository
	emailSender port.EmailSender
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(
	repo port.PaymentRepository,
	studentRepo port.StudentRepository,
	emailSender port.EmailSender,
) PaymentService {
	return &paymentService{
		repo:        repo,
		studentRepo: studentRepo,
		emailSender: emailSender,
	}
}

func (s *paymentService) Create(ctx context.Context, tenantID uuid.UUID, input CreatePaymentInput) (*domain.Payment, error) {
	status := input.Status
	if status == "" {
		status = domain.PaymentStatusPaid
	}
	if !domain.ValidPaymentStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}

	payment := &domain.Payment{
		TenantID:    tenantID,
		StudentID:   input.StudentID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		DueDate:     input.DueDate,
		Status:      status,
		Method:      input.Method,
		Notes:       input.Notes,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentRecord, error) {
	return s.repo.GetRecordByID(ctx, tenantID, id)
}

func (s *paymentService) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.PaymentRecord, int, error) {
	if filter.Status != "" && !domain.ValidPaymentStatuses[domain.PaymentStatus(filter.Status)] {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, tenantID, filter)
}

func (s *paymentService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdatePaymentInput) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.StudentID != nil {
		payment.StudentID = input.StudentID
	}
	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if input.DueDate != nil {
		payment.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !domain.ValidPaymentStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		payment.Status = *input.Status
	}
	if input.Method != nil {
		payment.Method = *input.Method
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}

func (s *paymentService) SendReminder(ctx context.Context, tenantID, id uuid.UUID) error {
	rec, err := s.repo.GetRecordByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if rec.Status == domain.PaymentStatusPaid {
		return domain.ErrReminderNotEligible
	}
	if rec.StudentID == nil {
		return domain.ErrReminderNotEligible
	}

	student, err := s.studentRepo.GetByID(ctx, tenantID, *rec.StudentID)
	if err != nil {
		return domain.ErrReminderNotEligible
	}
	if student.Email == "" {
		return domain.ErrReminderNotEligible
	}

	if err := s.emailSender.SendPaymentReminder(ctx, student.Email, student.Name, rec); err != nil {
		return fmt.Errorf("paymentService.SendReminder: %w", err)
	}
	return nil
}
