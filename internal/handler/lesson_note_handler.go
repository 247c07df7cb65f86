package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/service"
)

// LessonNoteHandler handles lesson note endpoints.
type LessonNoteHandler struct {
	noteService service.LessonNoteService
}

// NewLessonNoteHandler creates a new LessonNoteHandler.
func NewLessonNoteHandler(noteService service.LessonNoteService) *LessonNoteHandler {
	return &LessonNoteHandler{noteService: noteService}
}

// Create handles POST /api/v1/lesson-notes
// @Summary Create a lesson note
// @Tags lesson-notes
// @Accept json
// @Produce json
// @Param request body CreateLessonNoteRequest true "Note details"
// @Success 201 {object} Response{data=domain.LessonNote} "Note created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /lesson-notes [post]
func (h *LessonNoteHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateLessonNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// List handles GET /api/v1/lesson-notes
// @Summary List lesson notes
// @Description List notes joined with student names, newest lesson first
// @Tags lesson-notes
// @Produce json
// @Param student_id query string false "Filter by student ID"
// @Param from query string false "Inclusive lower bound on lesson date"
// @Param until query string false "Exclusive upper bound on lesson date"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.LessonNoteRecord,meta=PagMeta} "List of notes"
// @Security BearerAuth
// @Router /lesson-notes [get]
func (h *LessonNoteHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}

	notes, total, err := h.noteService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notes, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/lesson-notes/:id
// @Summary Get lesson note by ID
// @Tags lesson-notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Response{data=domain.LessonNote} "Note details"
// @Failure 404 {object} ErrorResponseBody "Note not found"
// @Security BearerAuth
// @Router /lesson-notes/{id} [get]
func (h *LessonNoteHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Update handles PUT /api/v1/lesson-notes/:id
// @Summary Update a lesson note
// @Tags lesson-notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param request body UpdateLessonNoteRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.LessonNote} "Note updated"
// @Failure 404 {object} ErrorResponseBody "Note not found"
// @Security BearerAuth
// @Router /lesson-notes/{id} [put]
func (h *LessonNoteHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	var input service.UpdateLessonNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Delete handles DELETE /api/v1/lesson-notes/:id
// @Summary Delete a lesson note
// @Tags lesson-notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Note deleted"
// @Failure 404 {object} ErrorResponseBody "Note not found"
// @Security BearerAuth
// @Router /lesson-notes/{id} [delete]
func (h *LessonNoteHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "lesson note deleted"})
}
