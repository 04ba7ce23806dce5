package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, token *domain.AuthToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockTokenRepo) GetByJTI(ctx context.Context, jti string) (*domain.AuthToken, error) {
	args := m.Called(ctx, jti)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthToken), args.Error(1)
}
func (m *MockTokenRepo) Revoke(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}
func (m *MockTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockHouseRepo
type MockHouseRepo struct {
	mock.Mock
}

func (m *MockHouseRepo) Create(ctx context.Context, house *domain.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}
func (m *MockHouseRepo) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.House), args.Error(1)
}
func (m *MockHouseRepo) Update(ctx context.Context, house *domain.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}
func (m *MockHouseRepo) List(ctx context.Context, filter domain.HouseFilter, page, pageSize int32) ([]domain.House, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.House), args.Get(1).(int64), args.Error(2)
}
func (m *MockHouseRepo) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.House, int64, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.House), args.Get(1).(int64), args.Error(2)
}
func (m *MockHouseRepo) CountByRegion(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}
func (m *MockHouseRepo) CountBySubwayProximity(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.RentalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.RentalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) HasOverlapping(ctx context.Context, houseID int64, startDate, endDate string, statuses []domain.OrderStatus) (bool, error) {
	args := m.Called(ctx, houseID, startDate, endDate, statuses)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) TransitionStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error) {
	args := m.Called(ctx, orderID, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) SetContractURL(ctx context.Context, orderID int64, url string) error {
	args := m.Called(ctx, orderID, url)
	return args.Error(0)
}
func (m *MockOrderRepo) RequestTermination(ctx context.Context, orderID, requesterID int64, reason string) (bool, error) {
	args := m.Called(ctx, orderID, requesterID, reason)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) ResolveTermination(ctx context.Context, orderID, resolverID int64, approve bool, feedback string) (bool, error) {
	args := m.Called(ctx, orderID, resolverID, approve, feedback)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	args := m.Called(ctx, tenantID, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	args := m.Called(ctx, landlordID, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) ListAll(ctx context.Context, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// MockCertificationRepo
type MockCertificationRepo struct {
	mock.Mock
}

func (m *MockCertificationRepo) Create(ctx context.Context, c *domain.LandlordCertification) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCertificationRepo) GetByID(ctx context.Context, id int64) (*domain.LandlordCertification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandlordCertification), args.Error(1)
}
func (m *MockCertificationRepo) LatestByUser(ctx context.Context, userID int64) (*domain.LandlordCertification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandlordCertification), args.Error(1)
}
func (m *MockCertificationRepo) ListByStatus(ctx context.Context, status domain.CertificationStatus, page, pageSize int32) ([]domain.LandlordCertification, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.LandlordCertification), args.Get(1).(int64), args.Error(2)
}
func (m *MockCertificationRepo) Review(ctx context.Context, id, reviewerID int64, status domain.CertificationStatus, reason string) (bool, error) {
	args := m.Called(ctx, id, reviewerID, status, reason)
	return args.Bool(0), args.Error(1)
}

// MockFavoriteRepo
type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Add(ctx context.Context, userID, houseID int64) error {
	args := m.Called(ctx, userID, houseID)
	return args.Error(0)
}
func (m *MockFavoriteRepo) Remove(ctx context.Context, userID, houseID int64) error {
	args := m.Called(ctx, userID, houseID)
	return args.Error(0)
}
func (m *MockFavoriteRepo) Exists(ctx context.Context, userID, houseID int64) (bool, error) {
	args := m.Called(ctx, userID, houseID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFavoriteRepo) ListHousesByUser(ctx context.Context, userID int64) ([]domain.House, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.House), args.Error(1)
}

// MockContactRepo
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, record *domain.ContactRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRecord), args.Error(1)
}
func (m *MockContactRepo) LatestByTenantAndHouse(ctx context.Context, tenantID, houseID int64) (*domain.ContactRecord, error) {
	args := m.Called(ctx, tenantID, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRecord), args.Error(1)
}
func (m *MockContactRepo) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus, remarks string) error {
	args := m.Called(ctx, id, status, remarks)
	return args.Error(0)
}
func (m *MockContactRepo) ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	args := m.Called(ctx, tenantID, page, pageSize)
	return args.Get(0).([]domain.ContactRecord), args.Get(1).(int64), args.Error(2)
}
func (m *MockContactRepo) ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	args := m.Called(ctx, landlordID, page, pageSize)
	return args.Get(0).([]domain.ContactRecord), args.Get(1).(int64), args.Error(2)
}
func (m *MockContactRepo) ListAll(ctx context.Context, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.ContactRecord), args.Get(1).(int64), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderCreatedNotification(ctx context.Context, to, tenantName, houseTitle string) error {
	args := m.Called(ctx, to, tenantName, houseTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderConfirmedNotification(ctx context.Context, to, houseTitle string) error {
	args := m.Called(ctx, to, houseTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendTerminationRequestedNotification(ctx context.Context, to, requesterName, houseTitle, reason string) error {
	args := m.Called(ctx, to, requesterName, houseTitle, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendTerminationResolvedNotification(ctx context.Context, to, houseTitle string, approved bool, feedback string) error {
	args := m.Called(ctx, to, houseTitle, approved, feedback)
	return args.Error(0)
}
func (m *MockEmailService) SendLeaseEndingReminder(ctx context.Context, to, houseTitle, endDate string) error {
	args := m.Called(ctx, to, houseTitle, endDate)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int64, username string, role domain.UserRole) (string, string, time.Time, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.String(1), args.Get(2).(time.Time), args.Error(3)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
