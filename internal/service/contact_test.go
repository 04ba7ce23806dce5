package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

func TestContactService_CreateContact(t *testing.T) {
	ctx := context.Background()
	tenant := &domain.User{ID: 3, Role: domain.RoleTenant}

	t.Run("Landlord is taken from the house", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		houseRepo := new(MockHouseRepo)
		svc := service.NewContactService(contactRepo, houseRepo)
		houseRepo.On("GetByID", ctx, int64(8)).Return(&domain.House{ID: 8, OwnerID: 10}, nil)
		contactRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContactRecord")).Return(nil)

		record, err := svc.CreateContact(ctx, tenant, 8, "is the flat still available?", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), record.LandlordID)
		assert.Equal(t, domain.ContactPending, record.Status)
	})

	t.Run("Bad visit time is rejected", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		houseRepo := new(MockHouseRepo)
		svc := service.NewContactService(contactRepo, houseRepo)
		houseRepo.On("GetByID", ctx, int64(8)).Return(&domain.House{ID: 8, OwnerID: 10}, nil)

		_, err := svc.CreateContact(ctx, tenant, 8, "", "next tuesday")
		assertKind(t, err, domain.ErrKindValidation)
		contactRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Missing house is not found", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		houseRepo := new(MockHouseRepo)
		svc := service.NewContactService(contactRepo, houseRepo)
		houseRepo.On("GetByID", ctx, int64(404)).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateContact(ctx, tenant, 404, "", "")
		assertKind(t, err, domain.ErrKindNotFound)
	})
}

func TestContactService_EnsureContact(t *testing.T) {
	ctx := context.Background()
	tenant := &domain.User{ID: 3, Role: domain.RoleTenant}

	t.Run("Existing record is reused", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		svc := service.NewContactService(contactRepo, new(MockHouseRepo))
		existing := &domain.ContactRecord{ID: 12, HouseID: 8, TenantID: tenant.ID, Status: domain.ContactAccepted}
		contactRepo.On("LatestByTenantAndHouse", ctx, tenant.ID, int64(8)).Return(existing, nil)

		record, err := svc.EnsureContact(ctx, tenant, 8, "", "")
		assert.NoError(t, err)
		assert.Equal(t, existing, record)
		contactRepo.AssertNotCalled(t, "Create")
	})

	t.Run("No prior record creates one", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		houseRepo := new(MockHouseRepo)
		svc := service.NewContactService(contactRepo, houseRepo)
		contactRepo.On("LatestByTenantAndHouse", ctx, tenant.ID, int64(8)).Return(nil, sql.ErrNoRows)
		houseRepo.On("GetByID", ctx, int64(8)).Return(&domain.House{ID: 8, OwnerID: 10}, nil)
		contactRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContactRecord")).Return(nil)

		record, err := svc.EnsureContact(ctx, tenant, 8, "hello", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.ContactPending, record.Status)
	})
}

func TestContactService_UpdateContactStatus(t *testing.T) {
	ctx := context.Background()
	record := &domain.ContactRecord{ID: 12, HouseID: 8, TenantID: 3, LandlordID: 10, Status: domain.ContactPending}

	t.Run("Only the landlord on the record may handle it", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		svc := service.NewContactService(contactRepo, new(MockHouseRepo))
		contactRepo.On("GetByID", ctx, int64(12)).Return(record, nil)

		_, err := svc.UpdateContactStatus(ctx, &domain.User{ID: 55, Role: domain.RoleLandlord}, 12, domain.ContactAccepted, "")
		assertKind(t, err, domain.ErrKindAuthorization)
		contactRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Unknown status is rejected before any lookup", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		svc := service.NewContactService(contactRepo, new(MockHouseRepo))

		_, err := svc.UpdateContactStatus(ctx, &domain.User{ID: 10, Role: domain.RoleLandlord}, 12, domain.ContactStatus("MAYBE"), "")
		assertKind(t, err, domain.ErrKindValidation)
		contactRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Landlord accepts with remarks", func(t *testing.T) {
		contactRepo := new(MockContactRepo)
		svc := service.NewContactService(contactRepo, new(MockHouseRepo))
		accepted := *record
		accepted.Status = domain.ContactAccepted
		contactRepo.On("GetByID", ctx, int64(12)).Return(record, nil).Once()
		contactRepo.On("UpdateStatus", ctx, int64(12), domain.ContactAccepted, "come by saturday").Return(nil)
		contactRepo.On("GetByID", ctx, int64(12)).Return(&accepted, nil)

		updated, err := svc.UpdateContactStatus(ctx, &domain.User{ID: 10, Role: domain.RoleLandlord}, 12, domain.ContactAccepted, "come by saturday")
		assert.NoError(t, err)
		assert.Equal(t, domain.ContactAccepted, updated.Status)
	})
}
