package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"leskita/internal/service"
)

// ReportHandler handles the dashboard and reports endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Overview handles GET /api/v1/reports/overview
// @Summary Report overview
// @Description Headline metrics: revenue by status, student and session totals, average session duration, and month-over-month growth. Recomputed from current rows on every request.
// @Tags reports
// @Produce json
// @Success 200 {object} Response{data=domain.ReportOverview} "Overview metrics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /reports/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	overview, err := h.reportService.Overview(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, overview)
}

// TopSubjects handles GET /api/v1/reports/top-subjects
// @Summary Top subjects
// @Description Subjects ranked by paid revenue, with session counts. Rows without a subject fall into the sentinel group.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum number of subjects" default(5)
// @Success 200 {object} Response{data=[]domain.SubjectStat} "Ranked subjects"
// @Security BearerAuth
// @Router /reports/top-subjects [get]
func (h *ReportHandler) TopSubjects(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	stats, err := h.reportService.TopSubjects(c.Request.Context(), tenantID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// MonthlyTrend handles GET /api/v1/reports/monthly-trend
// @Summary Monthly trend
// @Description Revenue, session, and distinct-student counts per calendar month, oldest first
// @Tags reports
// @Produce json
// @Param months query int false "Number of months" default(6)
// @Success 200 {object} Response{data=[]domain.MonthlyBucket} "Monthly buckets"
// @Security BearerAuth
// @Router /reports/monthly-trend [get]
func (h *ReportHandler) MonthlyTrend(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	months, _ := strconv.Atoi(c.DefaultQuery("months", "0"))

	buckets, err := h.reportService.MonthlyTrend(c.Request.Context(), tenantID, months)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, buckets)
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Dashboard stats
// @Description Cards for the landing view: active students, today's sessions, this month's revenue, plus today's schedule and recently added students
// @Tags reports
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStats} "Dashboard stats"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.reportService.Dashboard(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
