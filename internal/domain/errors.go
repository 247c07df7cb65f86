package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug = errors.New("tenant slug already exists")
	ErrInsufficientRole    = errors.New("insufficient role for this action")
	ErrNoTenantMembership  = errors.New("user has no tenant membership")
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrReminderNotEligible = errors.New("payment is not pending or overdue")
)
