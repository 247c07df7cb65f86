package handler_test

import (
	"bytes"
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
	"leskita/internal/middleware"
	"leskita/internal/service"
	"leskita/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, tenantID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	c.Set(middleware.ContextKeyEmail, "user@bimbel.id")
}

func TestStudentHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	tenantID := uuid.New()
	userID := uuid.New()
	studentID := uuid.New()

	expected := &domain.Student{
		ID:       studentID,
		TenantID: tenantID,
		Name:     "Budi Santoso",
		Subject:  "Matematika",
		IsActive: true,
	}

	mockSvc.On("Create", mock.Anything, tenantID, mock.MatchedBy(func(input service.CreateStudentInput) bool {
		return input.Name == "Budi Santoso" && input.Subject == "Matematika"
	})).Return(expected, nil)

	body, _ := json.Marshal(map[string]string{
		"name":    "Budi Santoso",
		"subject": "Matematika",
		"grade":   "SMA 2",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, tenantID, userID, "member")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestStudentHandler_Create_NoAuth(t *testing.T) {
	h := handler.NewStudentHandler(new(mocks.MockStudentService))

	body, _ := json.Marshal(map[string]string{"name": "Budi"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentHandler_Create_MissingName(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	body, _ := json.Marshal(map[string]string{"subject": "Fisika"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestStudentHandler_List_HidesInactiveByDefault(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	tenantID := uuid.New()
	students := []domain.Student{{ID: uuid.New(), Name: "Siti", IsActive: true}}

	mockSvc.On("List", mock.Anything, tenantID, "", true, 0, 20).Return(students, 1, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/students", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestStudentHandler_List_IncludeInactive(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	tenantID := uuid.New()
	mockSvc.On("List", mock.Anything, tenantID, "budi", false, 0, 20).
		Return([]domain.Student{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/students?q=budi&include_inactive=true", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestStudentHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	tenantID := uuid.New()
	studentID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, tenantID, studentID).Return(nil, domain.ErrStudentNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/students/"+studentID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: studentID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "STUDENT_NOT_FOUND", resp.Error.Code)
}

func TestStudentHandler_Delete_SoftDeletes(t *testing.T) {
	mockSvc := new(mocks.MockStudentService)
	h := handler.NewStudentHandler(mockSvc)

	tenantID := uuid.New()
	studentID := uuid.New()
	mockSvc.On("Delete", mock.Anything, tenantID, studentID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/students/"+studentID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: studentID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
