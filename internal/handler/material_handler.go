package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/service"
)

// MaterialHandler handles learning material endpoints.
type MaterialHandler struct {
	materialService service.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// Upload handles POST /api/v1/materials
// @Summary Upload a learning material
// @Description Upload a file with its metadata as multipart form data
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Material file"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param subject formData string false "Subject"
// @Param grade_level formData string false "Grade level"
// @Param is_public formData bool false "Visible to all tenant members" default(false)
// @Success 201 {object} Response{data=domain.Material} "Material uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or title"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /materials [post]
func (h *MaterialHandler) Upload(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	title := c.PostForm("title")
	if title == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "title is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not open uploaded file")
		return
	}
	defer file.Close()

	material, err := h.materialService.Upload(c.Request.Context(), service.MaterialUploadInput{
		TenantID:    tenantID,
		UploadedBy:  userID,
		Title:       title,
		Description: c.PostForm("description"),
		Subject:     c.PostForm("subject"),
		GradeLevel:  c.PostForm("grade_level"),
		IsPublic:    c.PostForm("is_public") == "true",
		File:        file,
		Header:      header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, material)
}

// List handles GET /api/v1/materials
// @Summary List learning materials
// @Tags materials
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Material,meta=PagMeta} "List of materials"
// @Security BearerAuth
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	materials, total, err := h.materialService.List(c.Request.Context(), tenantID, c.Query("subject"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, materials, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/materials/:id
// @Summary Get material by ID
// @Tags materials
// @Produce json
// @Param id path string true "Material ID (UUID)"
// @Success 200 {object} Response{data=domain.Material} "Material details"
// @Failure 404 {object} ErrorResponseBody "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [get]
func (h *MaterialHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	material, err := h.materialService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, material)
}

// Download handles GET /api/v1/materials/:id/download
// @Summary Get a download URL
// @Description Return a presigned URL for the material's file and count the download
// @Tags materials
// @Produce json
// @Param id path string true "Material ID (UUID)"
// @Success 200 {object} Response{data=MaterialDownload} "Presigned download URL"
// @Failure 404 {object} ErrorResponseBody "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/download [get]
func (h *MaterialHandler) Download(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	url, err := h.materialService.GetDownloadURL(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MaterialDownload{DownloadURL: url})
}

// Delete handles DELETE /api/v1/materials/:id
// @Summary Delete a material
// @Description Remove the material and its stored file
// @Tags materials
// @Produce json
// @Param id path string true "Material ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Material deleted"
// @Failure 404 {object} ErrorResponseBody "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	if err := h.materialService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "material deleted"})
}
