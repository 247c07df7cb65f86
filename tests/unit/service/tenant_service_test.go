package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
	"leskita/mocks"
)

func TestTenantService_Create_ActiveByDefault(t *testing.T) {
	mockRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tenant *domain.Tenant) bool {
		return tenant.Name == "Bimbel Cerdas" && tenant.Slug == "bimbel-cerdas" && tenant.IsActive
	})).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Bimbel Cerdas",
		Slug: "bimbel-cerdas",
	})

	assert.NoError(t, err)
	assert.True(t, tenant.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	mockRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateTenantSlug)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Bimbel Cerdas",
		Slug: "bimbel-cerdas",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
}

func TestTenantService_Update_Deactivates(t *testing.T) {
	mockRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(mockRepo)

	tenantID := uuid.New()
	existing := &domain.Tenant{ID: tenantID, Name: "Bimbel Cerdas", Slug: "bimbel-cerdas", IsActive: true}

	mockRepo.On("GetByID", mock.Anything, tenantID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tenant *domain.Tenant) bool {
		return !tenant.IsActive && tenant.Slug == "bimbel-cerdas"
	})).Return(nil)

	inactive := false
	tenant, err := svc.Update(context.Background(), tenantID, service.UpdateTenantInput{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, tenant.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestTenantService_ResolveForUser_NoMembership(t *testing.T) {
	mockRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(mockRepo)

	userID := uuid.New()
	mockRepo.On("ResolveForUser", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	_, err := svc.ResolveForUser(context.Background(), userID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
