package postgres

import (
	"database/sql"

	"homelet-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store groups the Postgres-backed repositories behind one handle.
type Store struct {
	db *sql.DB

	Users          repository.UserRepository
	AuthTokens     repository.AuthTokenRepository
	Houses         repository.HouseRepository
	Orders         repository.OrderRepository
	Regions        repository.RegionRepository
	Announcements  repository.AnnouncementRepository
	Chat           repository.ChatRepository
	Support        repository.SupportRepository
	Certifications repository.CertificationRepository
	Favorites      repository.FavoriteRepository
	Contacts       repository.ContactRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		Users:          NewUserRepository(db),
		AuthTokens:     NewAuthTokenRepository(db),
		Houses:         NewHouseRepository(db),
		Orders:         NewOrderRepository(db),
		Regions:        NewRegionRepository(db),
		Announcements:  NewAnnouncementRepository(db),
		Chat:           NewChatRepository(db),
		Support:        NewSupportRepository(db),
		Certifications: NewCertificationRepository(db),
		Favorites:      NewFavoriteRepository(db),
		Contacts:       NewContactRepository(db),
	}
}
