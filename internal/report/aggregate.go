// Package report implements the tenant-scoped aggregation pipeline behind
// the dashboard and reports views: revenue totals, growth percentages,
// subject rankings, and calendar-month trend buckets. Everything here is a
// pure function over rows the caller has already fetched; nothing reaches
// back into storage.
package report

import (
	"math"
	"sort"

	"leskita/internal/domain"
)

// safeAmount treats NaN and infinite amounts as 0 so a malformed row can
// never poison a sum.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalRevenue sums payment amounts over rows with status paid.
func TotalRevenue(payments []domain.Payment) float64 {
	return AmountByStatus(payments, domain.PaymentStatusPaid)
}

// AmountByStatus sums payment amounts over rows with the given status.
func AmountByStatus(payments []domain.Payment, status domain.PaymentStatus) float64 {
	var sum float64
	for _, p := range payments {
		if p.Status == status {
			sum += safeAmount(p.Amount)
		}
	}
	return sum
}

// CountByStatus counts payments with the given status.
func CountByStatus(payments []domain.Payment, status domain.PaymentStatus) int {
	n := 0
	for _, p := range payments {
		if p.Status == status {
			n++
		}
	}
	return n
}

// GrowthPercent returns the period-over-period growth of current relative to
// previous, in percent. A zero previous period yields 0 rather than an
// undefined value; callers render "no growth" instead of dividing by zero.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// TopSubjects ranks subjects by paid revenue. Payments contribute revenue
// through their student's subject, schedules contribute session counts
// through their own subject. No row is dropped: an unpaid payment still
// forms its subject group with zero revenue, and rows whose subject is
// missing are attributed to the sentinel group. The result is sorted by
// revenue descending with ties keeping first-seen order, truncated to limit.
func TopSubjects(payments []domain.PaymentRecord, schedules []domain.Schedule, limit int) []domain.SubjectStat {
	if limit <= 0 {
		return nil
	}

	index := make(map[string]int)
	var stats []domain.SubjectStat

	group := func(subject string) *domain.SubjectStat {
		if subject == "" {
			subject = domain.UnknownSubjectLabel
		}
		i, ok := index[subject]
		if !ok {
			i = len(stats)
			index[subject] = i
			stats = append(stats, domain.SubjectStat{Subject: subject})
		}
		return &stats[i]
	}

	for _, p := range payments {
		g := group(p.StudentSubject)
		if p.Status == domain.PaymentStatusPaid {
			g.Revenue += safeAmount(p.Amount)
		}
	}
	for _, s := range schedules {
		group(s.Subject).SessionCount++
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	for i := range stats {
		stats[i].RevenueFormatted = FormatIDR(stats[i].Revenue)
	}
	return stats
}

// AverageSessionDuration returns the mean session length in minutes over
// schedules that have both timestamps, ignoring rows whose end does not
// follow the start. When no schedule qualifies it returns defaultMinutes,
// the configured fallback shown before any session has been held.
func AverageSessionDuration(schedules []domain.Schedule, defaultMinutes float64) float64 {
	var total float64
	n := 0
	for _, s := range schedules {
		if s.StartTime.IsZero() || s.EndTime.IsZero() || !s.EndTime.After(s.StartTime) {
			continue
		}
		total += s.EndTime.Sub(s.StartTime).Minutes()
		n++
	}
	if n == 0 {
		return defaultMinutes
	}
	return total / float64(n)
}
