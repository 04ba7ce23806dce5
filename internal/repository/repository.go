package repository

import (
	"context"
	"errors"
	"time"

	"homelet-backend/internal/domain"
)

// ErrBookingConflict is returned by OrderRepository.Create when the
// requested date range overlaps an existing blocking order on the same
// house. The check runs under a per-house lock inside the insert
// transaction, so callers can rely on it being race-free.
var ErrBookingConflict = errors.New("house already booked for an overlapping date range")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AuthTokenRepository interface {
	Create(ctx context.Context, token *domain.AuthToken) error
	GetByJTI(ctx context.Context, jti string) (*domain.AuthToken, error)
	Revoke(ctx context.Context, jti string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type HouseRepository interface {
	Create(ctx context.Context, house *domain.House) error
	GetByID(ctx context.Context, id int64) (*domain.House, error)
	Update(ctx context.Context, house *domain.House) error
	List(ctx context.Context, filter domain.HouseFilter, page, pageSize int32) ([]domain.House, int64, error)
	ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.House, int64, error)
	CountByRegion(ctx context.Context) (map[string]int64, error)
	CountBySubwayProximity(ctx context.Context) (withSubway, withoutSubway int64, err error)
}

type OrderRepository interface {
	// Create inserts the order inside one transaction that holds
	// pg_advisory_xact_lock(house_id) across the overlap re-check, and
	// returns ErrBookingConflict when the range is taken.
	Create(ctx context.Context, order *domain.RentalOrder) error
	GetByID(ctx context.Context, id int64) (*domain.RentalOrder, error)

	// HasOverlapping reports whether any order on the house in one of the
	// given statuses intersects [startDate, endDate], boundaries included.
	HasOverlapping(ctx context.Context, houseID int64, startDate, endDate string, statuses []domain.OrderStatus) (bool, error)

	// TransitionStatus performs a compare-and-set from 'from' to 'to' and
	// reports whether the row was in the expected state.
	TransitionStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error)

	SetContractURL(ctx context.Context, orderID int64, url string) error

	// RequestTermination opens a termination request unless one is already
	// pending or the order is closed; reports whether it applied.
	RequestTermination(ctx context.Context, orderID, requesterID int64, reason string) (bool, error)

	// ResolveTermination approves or rejects the pending request; approval
	// also forces the order status to TERMINATED in the same statement.
	ResolveTermination(ctx context.Context, orderID, resolverID int64, approve bool, feedback string) (bool, error)

	ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error)
	ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.RentalOrder, int64, error)

	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type CertificationRepository interface {
	Create(ctx context.Context, c *domain.LandlordCertification) error
	GetByID(ctx context.Context, id int64) (*domain.LandlordCertification, error)
	LatestByUser(ctx context.Context, userID int64) (*domain.LandlordCertification, error)
	ListByStatus(ctx context.Context, status domain.CertificationStatus, page, pageSize int32) ([]domain.LandlordCertification, int64, error)

	// Review resolves a PENDING application and reports whether it was
	// still pending; a second review of the same application applies
	// nothing.
	Review(ctx context.Context, id, reviewerID int64, status domain.CertificationStatus, reason string) (bool, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, houseID int64) error
	Remove(ctx context.Context, userID, houseID int64) error
	Exists(ctx context.Context, userID, houseID int64) (bool, error)
	ListHousesByUser(ctx context.Context, userID int64) ([]domain.House, error)
}

type ContactRepository interface {
	Create(ctx context.Context, record *domain.ContactRecord) error
	GetByID(ctx context.Context, id int64) (*domain.ContactRecord, error)
	LatestByTenantAndHouse(ctx context.Context, tenantID, houseID int64) (*domain.ContactRecord, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus, remarks string) error
	ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error)
	ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.ContactRecord, int64, error)
}

type RegionRepository interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
	ListSubwayLines(ctx context.Context) ([]domain.SubwayLine, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	ListActive(ctx context.Context) ([]domain.Announcement, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int64, error)
	Deactivate(ctx context.Context, id int64) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListBetween(ctx context.Context, userID, peerID int64, limit int32) ([]domain.ChatMessage, error)
	ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error)
	MarkRead(ctx context.Context, recipientID, peerID int64) error
}

type SupportRepository interface {
	CreateTicket(ctx context.Context, ticket *domain.SupportTicket) error
	GetTicket(ctx context.Context, id int64) (*domain.SupportTicket, error)
	ListTicketsByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.SupportTicket, int64, error)
	ListTickets(ctx context.Context, page, pageSize int32) ([]domain.SupportTicket, int64, error)
	UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) error
	AddMessage(ctx context.Context, msg *domain.SupportMessage) error
	ListMessages(ctx context.Context, ticketID int64) ([]domain.SupportMessage, error)
}
