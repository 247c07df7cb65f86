package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/service"
)

// ScheduleHandler handles session schedule endpoints.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Create handles POST /api/v1/schedules
// @Summary Create a session
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body CreateScheduleRequest true "Session details"
// @Success 201 {object} Response{data=domain.Schedule} "Session created"
// @Failure 400 {object} ErrorResponseBody "Validation error or end before start"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, schedule)
}

// List handles GET /api/v1/schedules
// @Summary List sessions
// @Description List sessions filtered by status, student, or a half-open start-time range
// @Tags schedules
// @Produce json
// @Param status query string false "Filter by status (upcoming, ongoing, completed)"
// @Param student_id query string false "Filter by student ID"
// @Param from query string false "Inclusive lower bound on start time"
// @Param until query string false "Exclusive upper bound on start time"
// @Param order query string false "Sort order by start time (asc or desc)" default(desc)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Schedule,meta=PagMeta} "List of sessions"
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}

	schedules, total, err := h.scheduleService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, schedules, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/schedules/:id
// @Summary Get session by ID
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} Response{data=domain.Schedule} "Session details"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid schedule ID")
		return
	}

	schedule, err := h.scheduleService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, schedule)
}

// Update handles PUT /api/v1/schedules/:id
// @Summary Update a session
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param request body UpdateScheduleRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Schedule} "Session updated"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid schedule ID")
		return
	}

	var input service.UpdateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, schedule)
}

// Delete handles DELETE /api/v1/schedules/:id
// @Summary Delete a session
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Session deleted"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid schedule ID")
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "schedule deleted"})
}
