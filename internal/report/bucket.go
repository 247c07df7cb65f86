package report

import (
	"time"

	"leskita/internal/domain"
)

// MonthlyBuckets builds n consecutive calendar-month buckets ending at the
// month containing now, oldest first. Each bucket covers the half-open range
// [Start, End) in now's location, so consecutive buckets share a boundary
// instant without overlapping.
func MonthlyBuckets(now time.Time, n int) []domain.MonthlyBucket {
	if n <= 0 {
		return nil
	}
	buckets := make([]domain.MonthlyBucket, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		start := first.AddDate(0, i, 0)
		buckets = append(buckets, domain.MonthlyBucket{
			Month: start.Format("Jan 2006"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return buckets
}

// bucketFor returns the index of the bucket whose [Start, End) range contains
// t, or -1 when t falls outside the window. A timestamp exactly on a bucket's
// start belongs to that bucket, never the previous one.
func bucketFor(buckets []domain.MonthlyBucket, t time.Time) int {
	for i, b := range buckets {
		if !t.Before(b.Start) && t.Before(b.End) {
			return i
		}
	}
	return -1
}

// BucketizeMonthly partitions payments and schedules into n calendar-month
// buckets ending at now. Per bucket it accumulates paid revenue (by payment
// date), session count (by start time), and the distinct students those
// sessions reference. Every in-window row lands in exactly one bucket; rows
// older than the window are dropped.
func BucketizeMonthly(now time.Time, n int, payments []domain.Payment, schedules []domain.Schedule) []domain.MonthlyBucket {
	buckets := MonthlyBuckets(now, n)
	if len(buckets) == 0 {
		return nil
	}

	students := make([]map[string]struct{}, len(buckets))
	for i := range students {
		students[i] = make(map[string]struct{})
	}

	for _, p := range payments {
		if p.Status != domain.PaymentStatusPaid {
			continue
		}
		if i := bucketFor(buckets, p.PaymentDate); i >= 0 {
			buckets[i].Revenue += safeAmount(p.Amount)
		}
	}
	for _, s := range schedules {
		i := bucketFor(buckets, s.StartTime)
		if i < 0 {
			continue
		}
		buckets[i].Sessions++
		if s.StudentID != nil {
			students[i][s.StudentID.String()] = struct{}{}
		}
	}

	for i := range buckets {
		buckets[i].Students = len(students[i])
		buckets[i].RevenueFormatted = FormatIDR(buckets[i].Revenue)
	}
	return buckets
}
