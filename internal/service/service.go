package service

import (
	"context"

	"homelet-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, fullName, phone string, role domain.UserRole) (*domain.User, error)
	// Login returns the signed access token alongside the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, jti string) error
	// ResolveToken turns a bearer token into the authenticated principal,
	// rejecting revoked tokens and blocked users.
	ResolveToken(ctx context.Context, tokenString string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.User, fullName, email, phone, avatarURL, bio string) (*domain.User, error)
}

type HouseService interface {
	CreateHouse(ctx context.Context, actor *domain.User, house *domain.House) (*domain.House, error)
	GetHouse(ctx context.Context, id int64) (*domain.House, error)
	UpdateHouse(ctx context.Context, actor *domain.User, house *domain.House) (*domain.House, error)
	SetHouseStatus(ctx context.Context, actor *domain.User, houseID int64, status domain.HouseStatus) (*domain.House, error)
	ListHouses(ctx context.Context, filter domain.HouseFilter, page, pageSize int32) ([]domain.House, int64, error)
	ListMyHouses(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.House, int64, error)

	// ToggleFavorite bookmarks the house for the actor, or removes the
	// bookmark if one exists; it reports whether the house is now
	// favorited.
	ToggleFavorite(ctx context.Context, actor *domain.User, houseID int64) (bool, error)
	ListFavorites(ctx context.Context, actor *domain.User) ([]domain.House, error)
}

/// CertificationService runs the landlord certification flow: a tenant
// submits documents, an admin reviews, approval promotes the user to
// LANDLORD.
type CertificationService interface {
	Submit(ctx context.Context, actor *domain.User, documentURLs []string, reason string) (*domain.LandlordCertification, error)
	MyLatest(ctx context.Context, actor *domain.User) (*domain.LandlordCertification, error)
	ListByStatus(ctx context.Context, status domain.CertificationStatus, page, pageSize int32) ([]domain.LandlordCertification, int64, error)
	Review(ctx context.Context, actor *domain.User, certificationID int64, status domain.CertificationStatus, reason string) (*domain.LandlordCertification, error)
}

type ContactService interface {
	CreateContact(ctx context.Context, actor *domain.User, houseID int64, message, preferredVisitTime string) (*domain.ContactRecord, error)
	// EnsureContact returns the tenant's latest record for the house,
	// creating one only when none exists yet.
	EnsureContact(ctx context.Context, actor *domain.User, houseID int64, message, preferredVisitTime string) (*domain.ContactRecord, error)
	UpdateContactStatus(ctx context.Context, actor *domain.User, recordID int64, status domain.ContactStatus, remarks string) (*domain.ContactRecord, error)
	ListForTenant(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.ContactRecord, int64, error)
	ListForLandlord(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.ContactRecord, int64, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.ContactRecord, int64, error)
}

// OrderService owns the rental order lifecycle: creation with a race-free
// booking conflict check, the landlord/tenant status transitions, contract
// hand-off, and the two-party termination negotiation.
type OrderService interface {
	CreateOrder(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error)
	GetOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)
	ListForTenant(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.RentalOrder, int64, error)
	ListForLandlord(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.RentalOrder, int64, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.RentalOrder, int64, error)

	CancelOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)
	ConfirmOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)
	ActivateOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)

	UploadContract(ctx context.Context, actor *domain.User, orderID int64, contractURL string) (*domain.RentalOrder, error)
	DownloadContract(ctx context.Context, actor *domain.User, orderID int64) (string, error)

	RequestTermination(ctx context.Context, actor *domain.User, orderID int64, reason string) (*domain.RentalOrder, error)
	ApproveTermination(ctx context.Context, actor *domain.User, orderID int64, feedback string) (*domain.RentalOrder, error)
	RejectTermination(ctx context.Context, actor *domain.User, orderID int64, feedback string) (*domain.RentalOrder, error)

	// HasBookingConflict reports whether any order on the house in one of
	// the blocking statuses overlaps the inclusive [startDate, endDate]
	// range. Read-only.
	HasBookingConflict(ctx context.Context, houseID int64, startDate, endDate string, statuses []domain.OrderStatus) (bool, error)
}

type LocationService interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
	ListSubwayLines(ctx context.Context) ([]domain.SubwayLine, error)
}

type AnnouncementService interface {
	Publish(ctx context.Context, actor *domain.User, title, content string, expiresAt string) (*domain.Announcement, error)
	ListActive(ctx context.Context) ([]domain.Announcement, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int64, error)
	Deactivate(ctx context.Context, actor *domain.User, id int64) error
}

type ChatService interface {
	SendMessage(ctx context.Context, actor *domain.User, recipientID int64, content string) (*domain.ChatMessage, error)
	ListConversations(ctx context.Context, actor *domain.User) ([]domain.Conversation, error)
	ListMessages(ctx context.Context, actor *domain.User, peerID int64, limit int32) ([]domain.ChatMessage, error)
}

type SupportService interface {
	OpenTicket(ctx context.Context, actor *domain.User, subject, content string) (*domain.SupportTicket, error)
	GetTicket(ctx context.Context, actor *domain.User, ticketID int64) (*domain.SupportTicket, []domain.SupportMessage, error)
	ListMyTickets(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.SupportTicket, int64, error)
	ListAllTickets(ctx context.Context, page, pageSize int32) ([]domain.SupportTicket, int64, error)
	Reply(ctx context.Context, actor *domain.User, ticketID int64, content string) (*domain.SupportMessage, error)
	CloseTicket(ctx context.Context, actor *domain.User, ticketID int64) error
}

type StatisticsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
	OrderTrend(ctx context.Context, days int) (*OrderTrend, error)
	HouseDistribution(ctx context.Context) (*HouseDistribution, error)
}

type EmailService interface {
	SendOrderCreatedNotification(ctx context.Context, to, tenantName, houseTitle string) error
	SendOrderConfirmedNotification(ctx context.Context, to, houseTitle string) error
	SendTerminationRequestedNotification(ctx context.Context, to, requesterName, houseTitle, reason string) error
	SendTerminationResolvedNotification(ctx context.Context, to, houseTitle string, approved bool, feedback string) error
	SendLeaseEndingReminder(ctx context.Context, to, houseTitle, endDate string) error
}
