package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/service"
)

// PaymentHandler handles payment management endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles POST /api/v1/payments
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Payment details"
// @Success 201 {object} Response{data=domain.Payment} "Payment recorded"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, payment)
}

// List handles GET /api/v1/payments
// @Summary List payments
// @Description List payment records joined with student names. Supports status, student, and half-open time-range filters.
// @Tags payments
// @Produce json
// @Param status query string false "Filter by status (paid, pending, overdue)"
// @Param student_id query string false "Filter by student ID"
// @Param from query string false "Inclusive lower bound on payment date (RFC 3339 or YYYY-MM-DD)"
// @Param until query string false "Exclusive upper bound on payment date"
// @Param order query string false "Sort order by payment date (asc or desc)" default(desc)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.PaymentRecord,meta=PagMeta} "List of payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}

	recs, total, err := h.paymentService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/payments/:id
// @Summary Get payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} Response{data=domain.PaymentRecord} "Payment details"
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	rec, err := h.paymentService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Update handles PUT /api/v1/payments/:id
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Param request body UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Payment} "Payment updated"
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	var input service.UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payment, err := h.paymentService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payment)
}

// Delete handles DELETE /api/v1/payments/:id
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Payment deleted"
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "payment deleted"})
}

// Remind handles POST /api/v1/payments/:id/remind
// @Summary Send a payment reminder
// @Description Email the student's contact about a pending or overdue payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Reminder sent"
// @Failure 400 {object} ErrorResponseBody "Payment is paid or student unreachable"
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Security BearerAuth
// @Router /payments/{id}/remind [post]
func (h *PaymentHandler) Remind(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	if err := h.paymentService.SendReminder(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "reminder sent"})
}
