package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
	"leskita/mocks"
)

func TestScheduleService_Create_DefaultsStatusAndMeetingType(t *testing.T) {
	repo := new(mocks.MockScheduleRepo)
	svc := service.NewScheduleService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	result, err := svc.Create(context.Background(), uuid.New(), service.CreateScheduleInput{
		Subject:   "Fisika",
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ScheduleStatusUpcoming, result.Status)
	assert.Equal(t, domain.MeetingOffline, result.MeetingType)
}

func TestScheduleService_Create_EndBeforeStart(t *testing.T) {
	repo := new(mocks.MockScheduleRepo)
	svc := service.NewScheduleService(repo)

	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	result, err := svc.Create(context.Background(), uuid.New(), service.CreateScheduleInput{
		Subject:   "Fisika",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	repo.AssertNotCalled(t, "Create")
}

func TestScheduleService_Create_ZeroDuration(t *testing.T) {
	repo := new(mocks.MockScheduleRepo)
	svc := service.NewScheduleService(repo)

	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	result, err := svc.Create(context.Background(), uuid.New(), service.CreateScheduleInput{
		Subject:   "Fisika",
		StartTime: start,
		EndTime:   start,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestScheduleService_Update_RevalidatesTimeRange(t *testing.T) {
	repo := new(mocks.MockScheduleRepo)
	svc := service.NewScheduleService(repo)

	tenantID := uuid.New()
	scheduleID := uuid.New()
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	existing := &domain.Schedule{
		ID:        scheduleID,
		TenantID:  tenantID,
		Subject:   "Kimia",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.ScheduleStatusUpcoming,
	}

	repo.On("GetByID", mock.Anything, tenantID, scheduleID).Return(existing, nil)

	badEnd := start.Add(-30 * time.Minute)
	result, err := svc.Update(context.Background(), tenantID, scheduleID, service.UpdateScheduleInput{
		EndTime: &badEnd,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	repo.AssertNotCalled(t, "Update")
}

func TestScheduleService_List_InvalidStatusFilter(t *testing.T) {
	repo := new(mocks.MockScheduleRepo)
	svc := service.NewScheduleService(repo)

	_, _, err := svc.List(context.Background(), uuid.New(), domain.RowFilter{Status: "postponed"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "List")
}
