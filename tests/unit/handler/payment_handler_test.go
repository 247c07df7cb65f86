package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/handler"
	"leskita/mocks"
)

func TestPaymentHandler_Remind_Success(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	tenantID := uuid.New()
	paymentID := uuid.New()
	mockSvc.On("SendReminder", mock.Anything, tenantID, paymentID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/remind", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: paymentID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Remind(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_Remind_NotEligible(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	tenantID := uuid.New()
	paymentID := uuid.New()
	mockSvc.On("SendReminder", mock.Anything, tenantID, paymentID).
		Return(domain.ErrReminderNotEligible)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/remind", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: paymentID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Remind(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "REMINDER_NOT_ELIGIBLE", resp.Error.Code)
}

func TestPaymentHandler_Remind_InvalidID(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/payments/not-a-uuid/remind", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.Remind(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "SendReminder")
}

func TestPaymentHandler_List_StatusFilter(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	tenantID := uuid.New()
	recs := []domain.PaymentRecord{
		{
			Payment:     domain.Payment{ID: uuid.New(), Amount: 500000, Status: domain.PaymentStatusOverdue},
			StudentName: "Budi Santoso",
		},
	}

	mockSvc.On("List", mock.Anything, tenantID, mock.MatchedBy(func(f domain.RowFilter) bool {
		return f.Status == "overdue" && f.OrderDesc && f.Limit == 20
	})).Return(recs, 1, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/payments?status=overdue", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_List_InvalidStudentIDFilter(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/payments?student_id=banana", http.NoBody)
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestPaymentHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	tenantID := uuid.New()
	paymentID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, tenantID, paymentID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: paymentID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
