package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"homelet-backend/internal/service"
	"homelet-backend/internal/storage"
)

// Services bundles everything the router needs. Keeps cmd/server wiring
// to a single struct literal.
type Services struct {
	Auth          service.AuthService
	User          service.UserService
	House         service.HouseService
	Order         service.OrderService
	Location      service.LocationService
	Announcement  service.AnnouncementService
	Chat          service.ChatService
	Support       service.SupportService
	Statistics    service.StatisticsService
	Certification service.CertificationService
	Contact       service.ContactService
	Files         storage.FileStore
}

func NewRouter(svcs Services) *mux.Router {
	root := mux.NewRouter()
	api := root.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.User)
	houseHandler := NewHouseHandler(svcs.House)
	orderHandler := NewOrderHandler(svcs.Order)
	locationHandler := NewLocationHandler(svcs.Location)
	annHandler := NewAnnouncementHandler(svcs.Announcement)
	chatHandler := NewChatHandler(svcs.Chat)
	supportHandler := NewSupportHandler(svcs.Support)
	statsHandler := NewStatisticsHandler(svcs.Statistics)
	certHandler := NewCertificationHandler(svcs.Certification)
	contactHandler := NewContactHandler(svcs.Contact)
	mediaHandler := NewMediaHandler(svcs.Files)

	// Public surface: browsing and authentication need no token.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/houses", houseHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/houses/{id:[0-9]+}", houseHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/houses/{id:[0-9]+}/availability", orderHandler.CheckAvailability).Methods(http.MethodGet)

	api.HandleFunc("/regions", locationHandler.ListRegions).Methods(http.MethodGet)
	api.HandleFunc("/subway-lines", locationHandler.ListSubwayLines).Methods(http.MethodGet)
	api.HandleFunc("/announcements", annHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/media/{name}", mediaHandler.Serve).Methods(http.MethodGet)

	// Everything else requires a principal.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(svcs.Auth))

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	authed.HandleFunc("/users/me", userHandler.GetMe).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", userHandler.UpdateMe).Methods(http.MethodPut)
	authed.HandleFunc("/users/{id:[0-9]+}", userHandler.GetUser).Methods(http.MethodGet)

	authed.HandleFunc("/houses", houseHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/houses/mine", houseHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/houses/favorites", houseHandler.ListFavorites).Methods(http.MethodGet)
	authed.HandleFunc("/houses/{id:[0-9]+}", houseHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/houses/{id:[0-9]+}/status", houseHandler.SetStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/houses/{id:[0-9]+}/favorite", houseHandler.ToggleFavorite).Methods(http.MethodPost)

	authed.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/orders", orderHandler.ListAll).Methods(http.MethodGet)
	authed.HandleFunc("/orders/mine", orderHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/orders/landlord", orderHandler.ListLandlord).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id:[0-9]+}/cancel", orderHandler.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/confirm", orderHandler.Confirm).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/activate", orderHandler.Activate).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/contract", orderHandler.UploadContract).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/contract", orderHandler.DownloadContract).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id:[0-9]+}/terminate", orderHandler.RequestTermination).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/termination/approve", orderHandler.ApproveTermination).Methods(http.MethodPost)
	authed.HandleFunc("/orders/{id:[0-9]+}/termination/reject", orderHandler.RejectTermination).Methods(http.MethodPost)

	authed.HandleFunc("/announcements/all", annHandler.ListAll).Methods(http.MethodGet)
	authed.HandleFunc("/announcements", annHandler.Publish).Methods(http.MethodPost)
	authed.HandleFunc("/announcements/{id:[0-9]+}", annHandler.Deactivate).Methods(http.MethodDelete)

	authed.HandleFunc("/chat/messages", chatHandler.Send).Methods(http.MethodPost)
	authed.HandleFunc("/chat/conversations", chatHandler.ListConversations).Methods(http.MethodGet)
	authed.HandleFunc("/chat/messages/{peer_id:[0-9]+}", chatHandler.ListMessages).Methods(http.MethodGet)

	authed.HandleFunc("/support/tickets", supportHandler.Open).Methods(http.MethodPost)
	authed.HandleFunc("/support/tickets", supportHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/support/tickets/all", supportHandler.ListAll).Methods(http.MethodGet)
	authed.HandleFunc("/support/tickets/{id:[0-9]+}", supportHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/support/tickets/{id:[0-9]+}/reply", supportHandler.Reply).Methods(http.MethodPost)
	authed.HandleFunc("/support/tickets/{id:[0-9]+}/close", supportHandler.Close).Methods(http.MethodPost)

	authed.HandleFunc("/certifications", certHandler.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/certifications", certHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/certifications/me", certHandler.Mine).Methods(http.MethodGet)
	authed.HandleFunc("/certifications/{id:[0-9]+}/review", certHandler.Review).Methods(http.MethodPost)

	authed.HandleFunc("/contacts", contactHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/contacts", contactHandler.ListAll).Methods(http.MethodGet)
	authed.HandleFunc("/contacts/ensure", contactHandler.Ensure).Methods(http.MethodPost)
	authed.HandleFunc("/contacts/mine", contactHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/contacts/landlord", contactHandler.ListLandlord).Methods(http.MethodGet)
	authed.HandleFunc("/contacts/{id:[0-9]+}/status", contactHandler.UpdateStatus).Methods(http.MethodPost)

	authed.HandleFunc("/admin/statistics/overview", statsHandler.Overview).Methods(http.MethodGet)
	authed.HandleFunc("/admin/statistics/order-trend", statsHandler.OrderTrend).Methods(http.MethodGet)
	authed.HandleFunc("/admin/statistics/house-distribution", statsHandler.HouseDistribution).Methods(http.MethodGet)

	authed.HandleFunc("/media", mediaHandler.Upload).Methods(http.MethodPost)

	return root
}
