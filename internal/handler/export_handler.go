package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/export"
	"leskita/internal/service"
)

// ExportHandler handles payment report export endpoints.
type ExportHandler struct {
	paymentService service.PaymentService
	tenantService  service.TenantService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(paymentService service.PaymentService, tenantService service.TenantService) *ExportHandler {
	return &ExportHandler{paymentService: paymentService, tenantService: tenantService}
}

// CSV handles GET /api/v1/exports/payments/csv
// @Summary Export payments as CSV
// @Description Stream the filtered payment records as a UTF-8 CSV with BOM for Excel
// @Tags exports
// @Produce text/csv
// @Param status query string false "Filter by status (paid, pending, overdue)"
// @Param from query string false "Inclusive lower bound on payment date"
// @Param until query string false "Exclusive upper bound on payment date"
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /exports/payments/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}
	filter.Limit = 0 // full history, no pagination

	recs, _, err := h.paymentService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.tenantName(c, tenantID), "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WritePayments(recs); err != nil {
		return
	}
	w.Flush()
}

// XLSX handles GET /api/v1/exports/payments/xlsx
// @Summary Export payments as XLSX
// @Description Stream the filtered payment records as an Excel workbook with a summary block
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status (paid, pending, overdue)"
// @Param from query string false "Inclusive lower bound on payment date"
// @Param until query string false "Exclusive upper bound on payment date"
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /exports/payments/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}
	filter.Limit = 0

	recs, _, err := h.paymentService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.tenantName(c, tenantID), "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, recs); err != nil {
		HandleError(c, err)
	}
}

// Print handles GET /api/v1/exports/payments/print
// @Summary Printable payment statement
// @Description Render the filtered payment records as a self-printing HTML document
// @Tags exports
// @Produce html
// @Param status query string false "Filter by status (paid, pending, overdue)"
// @Param from query string false "Inclusive lower bound on payment date"
// @Param until query string false "Exclusive upper bound on payment date"
// @Success 200 {string} string "HTML document"
// @Security BearerAuth
// @Router /exports/payments/print [get]
func (h *ExportHandler) Print(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filter, ok := parseRowFilter(c)
	if !ok {
		return
	}
	filter.Limit = 0

	recs, _, err := h.paymentService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.WriteHTML(c.Writer, h.tenantName(c, tenantID), recs); err != nil {
		HandleError(c, err)
	}
}

// tenantName resolves the tenant's display name for filenames and document
// headers, falling back to a generic label when the lookup fails.
func (h *ExportHandler) tenantName(c *gin.Context, tenantID uuid.UUID) string {
	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		return "laporan"
	}
	return tenant.Name
}
