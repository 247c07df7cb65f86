package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"leskita/internal/config"
	"leskita/internal/domain"
	"leskita/internal/port"
	"leskita/internal/report"
)

// ReportService computes the dashboard and reports views. Every call works on
// a fresh snapshot of the tenant's rows; nothing is cached or persisted. When
// a fetch fails the affected view degrades to zero values instead of erroring,
// so a broken join or slow table never takes down the dashboard.
type ReportService interface {
	Overview(ctx context.Context, tenantID uuid.UUID) (*domain.ReportOverview, error)
	TopSubjects(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.SubjectStat, error)
	MonthlyTrend(ctx context.Context, tenantID uuid.UUID, months int) ([]domain.MonthlyBucket, error)
	Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error)
}

// recentStudentsLimit caps the "recently added" dashboard card.
const recentStudentsLimit = 6

type reportService struct {
	paymentRepo  port.PaymentRepository
	scheduleRepo port.ScheduleRepository
	studentRepo  port.StudentRepository
	cfg          config.ReportConfig
	now          func() time.Time
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	paymentRepo port.PaymentRepository,
	scheduleRepo port.ScheduleRepository,
	studentRepo port.StudentRepository,
	cfg config.ReportConfig,
) ReportService {
	return &reportService{
		paymentRepo:  paymentRepo,
		scheduleRepo: scheduleRepo,
		studentRepo:  studentRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// fetchPayments returns the tenant's full payment history. On failure it logs
// and returns an empty slice so aggregates degrade to zero.
func (s *reportService) fetchPayments(ctx context.Context, tenantID uuid.UUID) []domain.PaymentRecord {
	recs, _, err := s.paymentRepo.List(ctx, tenantID, domain.RowFilter{})
	if err != nil {
		log.Printf("reportService: fetching payments for tenant %s: %v", tenantID, err)
		return nil
	}
	return recs
}

func (s *reportService) fetchSchedules(ctx context.Context, tenantID uuid.UUID) []domain.Schedule {
	schedules, _, err := s.scheduleRepo.List(ctx, tenantID, domain.RowFilter{})
	if err != nil {
		log.Printf("reportService: fetching schedules for tenant %s: %v", tenantID, err)
		return nil
	}
	return schedules
}

func payments(recs []domain.PaymentRecord) []domain.Payment {
	out := make([]domain.Payment, len(recs))
	for i, r := range recs {
		out[i] = r.Payment
	}
	return out
}

func (s *reportService) Overview(ctx context.Context, tenantID uuid.UUID) (*domain.ReportOverview, error) {
	recs := s.fetchPayments(ctx, tenantID)
	schedules := s.fetchSchedules(ctx, tenantID)
	pays := payments(recs)

	totalStudents, err := s.studentRepo.CountActive(ctx, tenantID)
	if err != nil {
		log.Printf("reportService.Overview: counting students for tenant %s: %v", tenantID, err)
		totalStudents = 0
	}

	// Growth compares the current calendar month against the previous one.
	buckets := report.BucketizeMonthly(s.now(), 2, pays, schedules)
	var revenueGrowth, studentGrowth float64
	if len(buckets) == 2 {
		revenueGrowth = report.GrowthPercent(buckets[1].Revenue, buckets[0].Revenue)
		studentGrowth = report.GrowthPercent(float64(buckets[1].Students), float64(buckets[0].Students))
	}

	overview := &domain.ReportOverview{
		TotalRevenue:          report.TotalRevenue(pays),
		PendingAmount:         report.AmountByStatus(pays, domain.PaymentStatusPending),
		OverdueAmount:         report.AmountByStatus(pays, domain.PaymentStatusOverdue),
		TotalStudents:         totalStudents,
		TotalSessions:         len(schedules),
		AverageSessionMinutes: report.AverageSessionDuration(schedules, float64(s.cfg.DefaultSessionMinutes)),
		StudentGrowthPercent:  studentGrowth,
		RevenueGrowthPercent:  revenueGrowth,
	}
	overview.TotalRevenueFormatted = report.FormatIDR(overview.TotalRevenue)
	overview.PendingAmountFormatted = report.FormatIDR(overview.PendingAmount)
	overview.OverdueAmountFormatted = report.FormatIDR(overview.OverdueAmount)
	return overview, nil
}

func (s *reportService) TopSubjects(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.SubjectStat, error) {
	if limit <= 0 {
		limit = s.cfg.TopSubjectsLimit
	}
	recs := s.fetchPayments(ctx, tenantID)
	schedules := s.fetchSchedules(ctx, tenantID)
	return report.TopSubjects(recs, schedules, limit), nil
}

func (s *reportService) MonthlyTrend(ctx context.Context, tenantID uuid.UUID, months int) ([]domain.MonthlyBucket, error) {
	if months <= 0 {
		months = s.cfg.TrendMonths
	}
	recs := s.fetchPayments(ctx, tenantID)
	schedules := s.fetchSchedules(ctx, tenantID)
	return report.BucketizeMonthly(s.now(), months, payments(recs), schedules), nil
}

func (s *reportService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	totalStudents, err := s.studentRepo.CountActive(ctx, tenantID)
	if err != nil {
		log.Printf("reportService.Dashboard: counting students for tenant %s: %v", tenantID, err)
		totalStudents = 0
	}

	todaySchedules, _, err := s.scheduleRepo.List(ctx, tenantID, domain.RowFilter{
		From:  &dayStart,
		Until: &dayEnd,
	})
	if err != nil {
		log.Printf("reportService.Dashboard: fetching today's schedules for tenant %s: %v", tenantID, err)
		todaySchedules = nil
	}

	monthPayments, _, err := s.paymentRepo.List(ctx, tenantID, domain.RowFilter{
		From:  &monthStart,
		Until: &monthEnd,
	})
	if err != nil {
		log.Printf("reportService.Dashboard: fetching monthly payments for tenant %s: %v", tenantID, err)
		monthPayments = nil
	}

	recentStudents, err := s.studentRepo.ListRecent(ctx, tenantID, recentStudentsLimit)
	if err != nil {
		log.Printf("reportService.Dashboard: fetching recent students for tenant %s: %v", tenantID, err)
		recentStudents = nil
	}

	stats := &domain.DashboardStats{
		TotalStudents:  totalStudents,
		TodaySessions:  len(todaySchedules),
		MonthlyRevenue: report.TotalRevenue(payments(monthPayments)),
		TodaySchedules: todaySchedules,
		RecentStudents: recentStudents,
	}
	stats.MonthlyRevenueFormatted = report.FormatIDR(stats.MonthlyRevenue)
	return stats, nil
}
