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

func TestCertificationService_Submit(t *testing.T) {
	ctx := context.Background()
	applicant := &domain.User{ID: 3, Role: domain.RoleTenant}

	t.Run("Requires at least one document", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))

		_, err := svc.Submit(ctx, applicant, []string{"", "  "}, "own the flat")
		assertKind(t, err, domain.ErrKindValidation)
		certRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Pending application blocks a second submission", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))
		certRepo.On("LatestByUser", ctx, applicant.ID).
			Return(&domain.LandlordCertification{ID: 1, UserID: applicant.ID, Status: domain.CertificationPending}, nil)

		_, err := svc.Submit(ctx, applicant, []string{"https://cdn.test/deed.pdf"}, "own the flat")
		assertKind(t, err, domain.ErrKindConflict)
		certRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Rejected applicant may reapply", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))
		certRepo.On("LatestByUser", ctx, applicant.ID).
			Return(&domain.LandlordCertification{ID: 1, UserID: applicant.ID, Status: domain.CertificationRejected}, nil)
		certRepo.On("Create", ctx, mock.AnythingOfType("*domain.LandlordCertification")).Return(nil)

		cert, err := svc.Submit(ctx, applicant, []string{" https://cdn.test/deed.pdf "}, "own the flat")
		assert.NoError(t, err)
		assert.Equal(t, domain.CertificationPending, cert.Status)
		assert.Equal(t, []string{"https://cdn.test/deed.pdf"}, cert.DocumentURLs)
	})

	t.Run("First application goes through", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))
		certRepo.On("LatestByUser", ctx, applicant.ID).Return(nil, sql.ErrNoRows)
		certRepo.On("Create", ctx, mock.AnythingOfType("*domain.LandlordCertification")).Return(nil)

		cert, err := svc.Submit(ctx, applicant, []string{"https://cdn.test/deed.pdf"}, "")
		assert.NoError(t, err)
		assert.Equal(t, applicant.ID, cert.UserID)
	})
}

func TestCertificationService_Review(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 99, Role: domain.RoleAdmin}
	pending := &domain.LandlordCertification{ID: 5, UserID: 3, Status: domain.CertificationPending}

	t.Run("Outcome must be terminal", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))

		_, err := svc.Review(ctx, admin, 5, domain.CertificationPending, "")
		assertKind(t, err, domain.ErrKindValidation)
		certRepo.AssertNotCalled(t, "Review")
	})

	t.Run("Approval promotes the applicant to landlord", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewCertificationService(certRepo, userRepo)

		reviewed := *pending
		reviewed.Status = domain.CertificationApproved
		certRepo.On("GetByID", ctx, int64(5)).Return(pending, nil).Once()
		certRepo.On("Review", ctx, int64(5), admin.ID, domain.CertificationApproved, "looks legitimate").Return(true, nil)
		certRepo.On("GetByID", ctx, int64(5)).Return(&reviewed, nil)
		userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleTenant}, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 3 && u.Role == domain.RoleLandlord
		})).Return(nil)

		cert, err := svc.Review(ctx, admin, 5, domain.CertificationApproved, "looks legitimate")
		assert.NoError(t, err)
		assert.Equal(t, domain.CertificationApproved, cert.Status)
		userRepo.AssertExpectations(t)
	})

	t.Run("Rejection leaves the role alone", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewCertificationService(certRepo, userRepo)

		reviewed := *pending
		reviewed.Status = domain.CertificationRejected
		certRepo.On("GetByID", ctx, int64(5)).Return(pending, nil).Once()
		certRepo.On("Review", ctx, int64(5), admin.ID, domain.CertificationRejected, "blurry documents").Return(true, nil)
		certRepo.On("GetByID", ctx, int64(5)).Return(&reviewed, nil)

		cert, err := svc.Review(ctx, admin, 5, domain.CertificationRejected, "blurry documents")
		assert.NoError(t, err)
		assert.Equal(t, domain.CertificationRejected, cert.Status)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Second review of the same application conflicts", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewCertificationService(certRepo, userRepo)

		certRepo.On("GetByID", ctx, int64(5)).Return(pending, nil)
		certRepo.On("Review", ctx, int64(5), admin.ID, domain.CertificationApproved, "").Return(false, nil)

		_, err := svc.Review(ctx, admin, 5, domain.CertificationApproved, "")
		assertKind(t, err, domain.ErrKindConflict)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Missing application is not found", func(t *testing.T) {
		certRepo := new(MockCertificationRepo)
		svc := service.NewCertificationService(certRepo, new(MockUserRepo))
		certRepo.On("GetByID", ctx, int64(404)).Return(nil, sql.ErrNoRows)

		_, err := svc.Review(ctx, admin, 404, domain.CertificationRejected, "")
		assertKind(t, err, domain.ErrKindNotFound)
	})
}
