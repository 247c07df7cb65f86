package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/handler"
	"leskita/internal/service"
	"leskita/mocks"
)

func multipartUpload(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		assert.NoError(t, err)
		_, err = fw.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestMaterialHandler_Upload_Success(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	tenantID := uuid.New()
	userID := uuid.New()
	material := &domain.Material{ID: uuid.New(), TenantID: tenantID, Title: "Rumus Turunan"}

	mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(input service.MaterialUploadInput) bool {
		return input.TenantID == tenantID &&
			input.UploadedBy == userID &&
			input.Title == "Rumus Turunan" &&
			input.Subject == "Matematika"
	})).Return(material, nil)

	body, contentType := multipartUpload(t, map[string]string{
		"title":   "Rumus Turunan",
		"subject": "Matematika",
	}, "turunan.pdf", []byte("%PDF-1.4 fake"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/materials", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, tenantID, userID, "member")

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestMaterialHandler_Upload_MissingFile(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	body, contentType := multipartUpload(t, map[string]string{"title": "Tanpa Berkas"}, "", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/materials", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upload")
}

func TestMaterialHandler_Upload_MissingTitle(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	body, contentType := multipartUpload(t, nil, "soal.pdf", []byte("data"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/materials", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upload")
}

func TestMaterialHandler_Upload_FileTooLarge(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	mockSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, domain.ErrFileTooLarge)

	body, contentType := multipartUpload(t, map[string]string{"title": "Video Besar"}, "video.mp4", []byte("data"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/materials", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "FILE_TOO_LARGE", resp.Error.Code)
}

func TestMaterialHandler_Download_ReturnsPresignedURL(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	tenantID := uuid.New()
	materialID := uuid.New()
	signed := "https://s3.ap-southeast-1.amazonaws.com/leskita-materials/abc?X-Amz-Signature=xyz"
	mockSvc.On("GetDownloadURL", mock.Anything, tenantID, materialID).Return(signed, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/materials/"+materialID.String()+"/download", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: materialID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, signed, data["download_url"])
	mockSvc.AssertExpectations(t)
}

func TestMaterialHandler_Download_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockMaterialService)
	h := handler.NewMaterialHandler(mockSvc)

	tenantID := uuid.New()
	materialID := uuid.New()
	mockSvc.On("GetDownloadURL", mock.Anything, tenantID, materialID).Return("", domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/materials/"+materialID.String()+"/download", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: materialID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
