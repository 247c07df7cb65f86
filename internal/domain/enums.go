package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ValidUserRoles enumerates assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// PaymentStatus represents the lifecycle of a payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// ValidPaymentStatuses enumerates accepted payment statuses.
var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentStatusPaid:    true,
	PaymentStatusPending: true,
	PaymentStatusOverdue: true,
}

// ScheduleStatus represents the lifecycle of a tutoring session.
type ScheduleStatus string

const (
	ScheduleStatusUpcoming  ScheduleStatus = "upcoming"
	ScheduleStatusOngoing   ScheduleStatus = "ongoing"
	ScheduleStatusCompleted ScheduleStatus = "completed"
)

// ValidScheduleStatuses enumerates accepted schedule statuses.
var ValidScheduleStatuses = map[ScheduleStatus]bool{
	ScheduleStatusUpcoming:  true,
	ScheduleStatusOngoing:   true,
	ScheduleStatusCompleted: true,
}

// MeetingType distinguishes online from in-person sessions.
type MeetingType string

const (
	MeetingOnline  MeetingType = "online"
	MeetingOffline MeetingType = "offline"
)

// StudentProgress grades how a student is doing in a lesson note.
type StudentProgress string

const (
	ProgressExcellent        StudentProgress = "excellent"
	ProgressGood             StudentProgress = "good"
	ProgressAverage          StudentProgress = "average"
	ProgressNeedsImprovement StudentProgress = "needs_improvement"
)

// ValidStudentProgress enumerates accepted progress grades.
var ValidStudentProgress = map[StudentProgress]bool{
	ProgressExcellent:        true,
	ProgressGood:             true,
	ProgressAverage:          true,
	ProgressNeedsImprovement: true,
}

// Sentinel labels used when a grouping key is missing. Rows with no linked
// student (or a student without a subject) are attributed to these groups
// instead of being dropped from aggregates.
const (
	UnknownStudentLabel = "Siswa Tidak Dikenal"
	UnknownSubjectLabel = "Lainnya"
	UnknownMethodLabel  = "Tidak Diketahui"
)
