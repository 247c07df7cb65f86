package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/handler"
	"leskita/mocks"
)

func exportFixtures() (uuid.UUID, []domain.PaymentRecord, *domain.Tenant) {
	tenantID := uuid.New()
	recs := []domain.PaymentRecord{
		{
			Payment: domain.Payment{
				ID:          uuid.New(),
				TenantID:    tenantID,
				Amount:      750000,
				PaymentDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
				Status:      domain.PaymentStatusPaid,
				Method:      "transfer",
			},
			StudentName:    "Siti Rahma",
			StudentSubject: "Bahasa Inggris",
		},
	}
	tenant := &domain.Tenant{ID: tenantID, Name: "Bimbel Cerdas", Slug: "bimbel-cerdas"}
	return tenantID, recs, tenant
}

func TestExportHandler_CSV_Success(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	mockTenants := new(mocks.MockTenantService)
	h := handler.NewExportHandler(mockPayments, mockTenants)

	tenantID, recs, tenant := exportFixtures()

	mockPayments.On("List", mock.Anything, tenantID, mock.MatchedBy(func(f domain.RowFilter) bool {
		return f.Limit == 0 // exports never paginate
	})).Return(recs, len(recs), nil)
	mockTenants.On("GetByID", mock.Anything, tenantID).Return(tenant, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/csv", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.CSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Bimbel_Cerdas")

	body := w.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}), "CSV should start with a UTF-8 BOM")
	assert.Contains(t, string(body), "Nama Siswa")
	assert.Contains(t, string(body), "Siti Rahma")
	assert.Contains(t, string(body), "Rp 750.000")
	mockPayments.AssertExpectations(t)
}

func TestExportHandler_CSV_TenantLookupFallback(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	mockTenants := new(mocks.MockTenantService)
	h := handler.NewExportHandler(mockPayments, mockTenants)

	tenantID, recs, _ := exportFixtures()

	mockPayments.On("List", mock.Anything, tenantID, mock.Anything).Return(recs, len(recs), nil)
	mockTenants.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/csv", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.CSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "laporan")
}

func TestExportHandler_CSV_OrphanedPaymentUsesSentinelLabels(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	mockTenants := new(mocks.MockTenantService)
	h := handler.NewExportHandler(mockPayments, mockTenants)

	tenantID := uuid.New()
	recs := []domain.PaymentRecord{
		{
			Payment: domain.Payment{
				ID:          uuid.New(),
				TenantID:    tenantID,
				Amount:      200000,
				PaymentDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				Status:      domain.PaymentStatusPending,
			},
		},
	}

	mockPayments.On("List", mock.Anything, tenantID, mock.Anything).Return(recs, 1, nil)
	mockTenants.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Les Pintar"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/csv", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.CSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, domain.UnknownStudentLabel)
	assert.Contains(t, body, domain.UnknownSubjectLabel)
	assert.Contains(t, body, domain.UnknownMethodLabel)
}

func TestExportHandler_XLSX_Success(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	mockTenants := new(mocks.MockTenantService)
	h := handler.NewExportHandler(mockPayments, mockTenants)

	tenantID, recs, tenant := exportFixtures()

	mockPayments.On("List", mock.Anything, tenantID, mock.Anything).Return(recs, len(recs), nil)
	mockTenants.On("GetByID", mock.Anything, tenantID).Return(tenant, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/xlsx", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.XLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// XLSX files are ZIP archives.
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestExportHandler_Print_ContainsTenantName(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	mockTenants := new(mocks.MockTenantService)
	h := handler.NewExportHandler(mockPayments, mockTenants)

	tenantID, recs, tenant := exportFixtures()

	mockPayments.On("List", mock.Anything, tenantID, mock.Anything).Return(recs, len(recs), nil)
	mockTenants.On("GetByID", mock.Anything, tenantID).Return(tenant, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/print", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Print(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "Bimbel Cerdas")
	assert.Contains(t, body, "Siti Rahma")
	assert.Contains(t, body, "window.print")
}

func TestExportHandler_CSV_NoAuth(t *testing.T) {
	mockPayments := new(mocks.MockPaymentService)
	h := handler.NewExportHandler(mockPayments, new(mocks.MockTenantService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/payments/csv", http.NoBody)

	h.CSV(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockPayments.AssertNotCalled(t, "List")
}
