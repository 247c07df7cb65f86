package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"leskita/internal/domain"
	"leskita/internal/service"
	"leskita/mocks"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(mockRepo)

	tenantID := uuid.New()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		if user.TenantID != tenantID || user.Email != "guru@bimbel.id" || !user.IsActive {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia-sekali")) == nil
	})).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    "guru@bimbel.id",
		Password: "rahasia-sekali",
		FullName: "Dewi Lestari",
		Role:     domain.RoleMember,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia-sekali", user.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(mockRepo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "guru@bimbel.id",
		Password: "rahasia-sekali",
		FullName: "Dewi Lestari",
		Role:     "superadmin",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "guru@bimbel.id",
		Password: "rahasia-sekali",
		FullName: "Dewi Lestari",
		Role:     domain.RoleAdmin,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Update_DeactivatesUser(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(mockRepo)

	tenantID := uuid.New()
	userID := uuid.New()
	existing := &domain.User{
		ID:       userID,
		TenantID: tenantID,
		Email:    "guru@bimbel.id",
		FullName: "Dewi Lestari",
		Role:     domain.RoleMember,
		IsActive: true,
	}

	mockRepo.On("GetByID", mock.Anything, tenantID, userID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		return !user.IsActive && user.Email == "guru@bimbel.id"
	})).Return(nil)

	inactive := false
	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{
		IsActive: &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, user.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(mockRepo)

	tenantID := uuid.New()
	userID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, tenantID, userID).
		Return(&domain.User{ID: userID, TenantID: tenantID}, nil)

	bad := domain.UserRole("owner")
	_, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Update")
}
