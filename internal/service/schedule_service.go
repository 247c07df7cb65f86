package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leskita/internal/domain"
	"leskita/internal/port"
)

// CreateScheduleInput is the DTO for creating a session.
type CreateScheduleInput struct {
	StudentID   *uuid.UUID            `json:"student_id"`
	Subject     string                `json:"subject" binding:"required"`
	StartTime   time.Time             `json:"start_time" binding:"required"`
	EndTime     time.Time             `json:"end_time" binding:"required"`
	Status      domain.ScheduleStatus `json:"status"`
	MeetingType domain.MeetingType    `json:"meeting_type"`
	MeetingURL  string                `json:"meeting_url"`
	Location    string                `json:"location"`
	Notes       string                `json:"notes"`
}

// UpdateScheduleInput is the DTO for updating a session.
type UpdateScheduleInput struct {
	StudentID   *uuid.UUID             `json:"student_id"`
	Subject     *string                `json:"subject"`
	StartTime   *time.Time             `json:"start_time"`
	EndTime     *time.Time             `json:"end_time"`
	Status      *domain.ScheduleStatus `json:"status"`
	MeetingType *domain.MeetingType    `json:"meeting_type"`
	MeetingURL  *string                `json:"meeting_url"`
	Location    *string                `json:"location"`
	Notes       *string                `json:"notes"`
}

// ScheduleService defines the session management contract.
type ScheduleService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateScheduleInput) (*domain.Schedule, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Schedule, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.Schedule, int, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateScheduleInput) (*domain.Schedule, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type scheduleService struct {
	repo port.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService implementation.
func NewScheduleService(repo port.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) Create(ctx context.Context, tenantID uuid.UUID, input CreateScheduleInput) (*domain.Schedule, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domain.ErrInvalidTimeRange
	}
	status := input.Status
	if status == "" {
		status = domain.ScheduleStatusUpcoming
	}
	if !domain.ValidScheduleStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	meetingType := input.MeetingType
	if meetingType == "" {
		meetingType = domain.MeetingOffline
	}

	schedule := &domain.Schedule{
		TenantID:    tenantID,
		StudentID:   input.StudentID,
		Subject:     input.Subject,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      status,
		MeetingType: meetingType,
		MeetingURL:  input.MeetingURL,
		Location:    input.Location,
		Notes:       input.Notes,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Schedule, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *scheduleService) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.Schedule, int, error) {
	if filter.Status != "" && !domain.ValidScheduleStatuses[domain.ScheduleStatus(filter.Status)] {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, tenantID, filter)
}

func (s *scheduleService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateScheduleInput) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.StudentID != nil {
		schedule.StudentID = input.StudentID
	}
	if input.Subject != nil {
		schedule.Subject = *input.Subject
	}
	if input.StartTime != nil {
		schedule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		schedule.EndTime = *input.EndTime
	}
	if !schedule.EndTime.After(schedule.StartTime) {
		return nil, domain.ErrInvalidTimeRange
	}
	if input.Status != nil {
		if !domain.ValidScheduleStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		schedule.Status = *input.Status
	}
	if input.MeetingType != nil {
		schedule.MeetingType = *input.MeetingType
	}
	if input.MeetingURL != nil {
		schedule.MeetingURL = *input.MeetingURL
	}
	if input.Location != nil {
		schedule.Location = *input.Location
	}
	if input.Notes != nil {
		schedule.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}
