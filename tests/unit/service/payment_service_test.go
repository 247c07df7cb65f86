package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
	"leskita/mocks"
)

func TestPaymentService_Create_InvalidStatus(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), new(mocks.MockEmailSender))

	result, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		Amount:      500000,
		PaymentDate: time.Now(),
		Status:      domain.PaymentStatus("refunded"),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "Create")
}

func TestPaymentService_Create_DefaultsStatusToPaid(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), new(mocks.MockEmailSender))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusPaid
	})).Return(nil)

	result, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		Amount:      500000,
		PaymentDate: time.Now(),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, result.Status)
	repo.AssertExpectations(t)
}

func TestPaymentService_List_InvalidStatusFilter(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), new(mocks.MockEmailSender))

	_, _, err := svc.List(context.Background(), uuid.New(), domain.RowFilter{Status: "cancelled"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "List")
}

func TestPaymentService_SendReminder_Success(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	studentRepo := new(mocks.MockStudentRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(repo, studentRepo, sender)

	tenantID := uuid.New()
	paymentID := uuid.New()
	studentID := uuid.New()
	rec := &domain.PaymentRecord{
		Payment: domain.Payment{
			ID:        paymentID,
			TenantID:  tenantID,
			StudentID: &studentID,
			Amount:    750000,
			Status:    domain.PaymentStatusOverdue,
		},
		StudentName:    "Budi Santoso",
		StudentSubject: "Matematika",
	}
	student := &domain.Student{
		ID:    studentID,
		Name:  "Budi Santoso",
		Email: "budi@mail.id",
	}

	repo.On("GetRecordByID", mock.Anything, tenantID, paymentID).Return(rec, nil)
	studentRepo.On("GetByID", mock.Anything, tenantID, studentID).Return(student, nil)
	sender.On("SendPaymentReminder", mock.Anything, "budi@mail.id", "Budi Santoso", rec).Return(nil)

	err := svc.SendReminder(context.Background(), tenantID, paymentID)

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestPaymentService_SendReminder_PaidNotEligible(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), sender)

	tenantID := uuid.New()
	paymentID := uuid.New()
	studentID := uuid.New()
	rec := &domain.PaymentRecord{
		Payment: domain.Payment{
			ID:        paymentID,
			StudentID: &studentID,
			Status:    domain.PaymentStatusPaid,
		},
	}

	repo.On("GetRecordByID", mock.Anything, tenantID, paymentID).Return(rec, nil)

	err := svc.SendReminder(context.Background(), tenantID, paymentID)

	assert.ErrorIs(t, err, domain.ErrReminderNotEligible)
	sender.AssertNotCalled(t, "SendPaymentReminder")
}

func TestPaymentService_SendReminder_OrphanedPayment(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), sender)

	tenantID := uuid.New()
	paymentID := uuid.New()
	rec := &domain.PaymentRecord{
		Payment: domain.Payment{
			ID:     paymentID,
			Status: domain.PaymentStatusPending,
		},
		StudentName: domain.UnknownStudentLabel,
	}

	repo.On("GetRecordByID", mock.Anything, tenantID, paymentID).Return(rec, nil)

	err := svc.SendReminder(context.Background(), tenantID, paymentID)

	assert.ErrorIs(t, err, domain.ErrReminderNotEligible)
	sender.AssertNotCalled(t, "SendPaymentReminder")
}

func TestPaymentService_SendReminder_StudentWithoutEmail(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	studentRepo := new(mocks.MockStudentRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(repo, studentRepo, sender)

	tenantID := uuid.New()
	paymentID := uuid.New()
	studentID := uuid.New()
	rec := &domain.PaymentRecord{
		Payment: domain.Payment{
			ID:        paymentID,
			StudentID: &studentID,
			Status:    domain.PaymentStatusPending,
		},
	}
	student := &domain.Student{ID: studentID, Name: "Siti", Email: ""}

	repo.On("GetRecordByID", mock.Anything, tenantID, paymentID).Return(rec, nil)
	studentRepo.On("GetByID", mock.Anything, tenantID, studentID).Return(student, nil)

	err := svc.SendReminder(context.Background(), tenantID, paymentID)

	assert.ErrorIs(t, err, domain.ErrReminderNotEligible)
	sender.AssertNotCalled(t, "SendPaymentReminder")
}

func TestPaymentService_SendReminder_SenderFailure(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	studentRepo := new(mocks.MockStudentRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(repo, studentRepo, sender)

	tenantID := uuid.New()
	paymentID := uuid.New()
	studentID := uuid.New()
	rec := &domain.PaymentRecord{
		Payment: domain.Payment{
			ID:        paymentID,
			StudentID: &studentID,
			Status:    domain.PaymentStatusOverdue,
		},
	}
	student := &domain.Student{ID: studentID, Name: "Budi", Email: "budi@mail.id"}

	repo.On("GetRecordByID", mock.Anything, tenantID, paymentID).Return(rec, nil)
	studentRepo.On("GetByID", mock.Anything, tenantID, studentID).Return(student, nil)
	sender.On("SendPaymentReminder", mock.Anything, "budi@mail.id", "Budi", rec).
		Return(errors.New("ses throttled"))

	err := svc.SendReminder(context.Background(), tenantID, paymentID)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReminderNotEligible)
}

func TestPaymentService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := service.NewPaymentService(repo, new(mocks.MockStudentRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	paymentID := uuid.New()
	existing := &domain.Payment{
		ID:       paymentID,
		TenantID: tenantID,
		Amount:   500000,
		Status:   domain.PaymentStatusPending,
		Method:   "transfer",
	}

	repo.On("GetByID", mock.Anything, tenantID, paymentID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newStatus := domain.PaymentStatusPaid
	result, err := svc.Update(context.Background(), tenantID, paymentID, service.UpdatePaymentInput{
		Status: &newStatus,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, result.Status)
	assert.Equal(t, float64(500000), result.Amount)
	assert.Equal(t, "transfer", result.Method)
}
