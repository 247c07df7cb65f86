package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportOverview holds the headline metrics for the reports view. It is
// derived, never persisted, and recomputed from current row snapshots on
// every request.
type ReportOverview struct {
	TotalRevenue           float64 `json:"total_revenue"`
	PendingAmount          float64 `json:"pending_amount"`
	OverdueAmount          float64 `json:"overdue_amount"`
	TotalStudents          int     `json:"total_students"`
	TotalSessions          int     `json:"total_sessions"`
	AverageSessionMinutes  float64 `json:"average_session_minutes"`
	StudentGrowthPercent   float64 `json:"student_growth_percent"`
	RevenueGrowthPercent   float64 `json:"revenue_growth_percent"`
	TotalRevenueFormatted  string  `json:"total_revenue_formatted"`
	PendingAmountFormatted string  `json:"pending_amount_formatted"`
	OverdueAmountFormatted string  `json:"overdue_amount_formatted"`
}

// SubjectStat ranks one subject by revenue.
type SubjectStat struct {
	Subject          string  `json:"subject"`
	SessionCount     int     `json:"session_count"`
	Revenue          float64 `json:"revenue"`
	RevenueFormatted string  `json:"revenue_formatted"`
}

// MonthlyBucket aggregates one calendar month [Start, End).
type MonthlyBucket struct {
	Month            string    `json:"month"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Students         int       `json:"students"`
	Sessions         int       `json:"sessions"`
	Revenue          float64   `json:"revenue"`
	RevenueFormatted string    `json:"revenue_formatted"`
}

// DashboardStats backs the dashboard cards.
type DashboardStats struct {
	TotalStudents           int        `json:"total_students"`
	TodaySessions           int        `json:"today_sessions"`
	MonthlyRevenue          float64    `json:"monthly_revenue"`
	MonthlyRevenueFormatted string     `json:"monthly_revenue_formatted"`
	TodaySchedules          []Schedule `json:"today_schedules"`
	RecentStudents          []Student  `json:"recent_students"`
}

// RowFilter narrows a tenant-scoped row fetch. Zero values mean "no filter".
// From/Until form a half-open [From, Until) range on the entity's primary
// timestamp column.
type RowFilter struct {
	StudentID *uuid.UUID
	Status    string
	From      *time.Time
	Until     *time.Time
	OrderDesc bool
	Offset    int
	Limit     int
}
