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

func TestLessonNoteService_Create_DefaultsProgress(t *testing.T) {
	mockRepo := new(mocks.MockLessonNoteRepo)
	svc := service.NewLessonNoteService(mockRepo)

	tenantID := uuid.New()
	studentID := uuid.New()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(note *domain.LessonNote) bool {
		return note.TenantID == tenantID &&
			note.Topic == "Persamaan kuadrat" &&
			note.StudentProgress == domain.ProgressAverage
	})).Return(nil)

	note, err := svc.Create(context.Background(), tenantID, service.CreateLessonNoteInput{
		StudentID:       &studentID,
		Topic:           "Persamaan kuadrat",
		LessonDate:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProgressAverage, note.StudentProgress)
	mockRepo.AssertExpectations(t)
}

func TestLessonNoteService_Create_InvalidProgress(t *testing.T) {
	mockRepo := new(mocks.MockLessonNoteRepo)
	svc := service.NewLessonNoteService(mockRepo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateLessonNoteInput{
		Topic:           "Fungsi kuadrat",
		LessonDate:      time.Now(),
		DurationMinutes: 60,
		StudentProgress: "superb",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestLessonNoteService_Update_PartialFields(t *testing.T) {
	mockRepo := new(mocks.MockLessonNoteRepo)
	svc := service.NewLessonNoteService(mockRepo)

	tenantID := uuid.New()
	noteID := uuid.New()
	existing := &domain.LessonNote{
		ID:              noteID,
		TenantID:        tenantID,
		Topic:           "Persamaan kuadrat",
		Content:         "Latihan faktorisasi",
		DurationMinutes: 90,
		StudentProgress: domain.ProgressGood,
	}

	mockRepo.On("GetByID", mock.Anything, tenantID, noteID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(note *domain.LessonNote) bool {
		return note.Homework == "Soal 1-10 halaman 42" &&
			note.Topic == "Persamaan kuadrat" &&
			note.DurationMinutes == 90
	})).Return(nil)

	homework := "Soal 1-10 halaman 42"
	note, err := svc.Update(context.Background(), tenantID, noteID, service.UpdateLessonNoteInput{
		Homework: &homework,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProgressGood, note.StudentProgress)
	mockRepo.AssertExpectations(t)
}

func TestLessonNoteService_Update_RejectsInvalidProgress(t *testing.T) {
	mockRepo := new(mocks.MockLessonNoteRepo)
	svc := service.NewLessonNoteService(mockRepo)

	tenantID := uuid.New()
	noteID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, tenantID, noteID).
		Return(&domain.LessonNote{ID: noteID, TenantID: tenantID}, nil)

	bad := domain.StudentProgress("stellar")
	_, err := svc.Update(context.Background(), tenantID, noteID, service.UpdateLessonNoteInput{
		StudentProgress: &bad,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Update")
}
