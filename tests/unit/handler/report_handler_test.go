package handler_test

import (
	"encoding/json"
	"errors"
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

func TestReportHandler_Overview_Success(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	tenantID := uuid.New()
	overview := &domain.ReportOverview{
		TotalRevenue:          1250000,
		TotalStudents:         12,
		TotalRevenueFormatted: "Rp 1.250.000",
	}
	mockSvc.On("Overview", mock.Anything, tenantID).Return(overview, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/overview", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Rp 1.250.000", data["total_revenue_formatted"])
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Overview_NoAuth(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/overview", http.NoBody)

	h.Overview(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "Overview")
}

func TestReportHandler_TopSubjects_PassesLimit(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	tenantID := uuid.New()
	stats := []domain.SubjectStat{
		{Subject: "Matematika", SessionCount: 10, Revenue: 900000, RevenueFormatted: "Rp 900.000"},
	}
	mockSvc.On("TopSubjects", mock.Anything, tenantID, 3).Return(stats, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/top-subjects?limit=3", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.TopSubjects(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_MonthlyTrend_DefaultsMonthsToZero(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	tenantID := uuid.New()
	// The service substitutes its configured default when months is zero.
	mockSvc.On("MonthlyTrend", mock.Anything, tenantID, 0).
		Return([]domain.MonthlyBucket{{Month: "Mar 2025"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/monthly-trend", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.MonthlyTrend(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Dashboard_Success(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	tenantID := uuid.New()
	stats := &domain.DashboardStats{
		TotalStudents:           8,
		TodaySessions:           2,
		MonthlyRevenue:          600000,
		MonthlyRevenueFormatted: "Rp 600.000",
	}
	mockSvc.On("Dashboard", mock.Anything, tenantID).Return(stats, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "admin")

	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(8), data["total_students"])
	assert.Equal(t, "Rp 600.000", data["monthly_revenue_formatted"])
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Dashboard_ServiceError(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)

	tenantID := uuid.New()
	mockSvc.On("Dashboard", mock.Anything, tenantID).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Dashboard(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}
