package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/service"
)

// StudentHandler handles student management endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create handles POST /api/v1/students
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body CreateStudentRequest true "Student details"
// @Success 201 {object} Response{data=domain.Student} "Student created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, student)
}

// List handles GET /api/v1/students
// @Summary List students
// @Description List students with optional name/subject search. Deactivated students are hidden unless include_inactive=true.
// @Tags students
// @Produce json
// @Param q query string false "Search term matching name or subject"
// @Param include_inactive query bool false "Include deactivated students" default(false)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Student,meta=PagMeta} "List of students"
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)
	query := c.Query("q")
	activeOnly := c.DefaultQuery("include_inactive", "false") != "true"

	students, total, err := h.studentService.List(c.Request.Context(), tenantID, query, activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, students, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/students/:id
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Success 200 {object} Response{data=domain.Student} "Student details"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *StudentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid student ID")
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, student)
}

// Update handles PUT /api/v1/students/:id
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Param request body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Student} "Student updated"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Security BearerAuth
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid student ID")
		return
	}

	var input service.UpdateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, student)
}

// Delete handles DELETE /api/v1/students/:id
// @Summary Deactivate a student
// @Description Soft-delete: the student is hidden from lists but their payment and schedule history keeps feeding reports
// @Tags students
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Student deactivated"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Security BearerAuth
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid student ID")
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "student deactivated"})
}
