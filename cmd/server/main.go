package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "homelet-backend/internal/api/http"
	"homelet-backend/internal/config"
	"homelet-backend/internal/logger"
	"homelet-backend/internal/repository/postgres"
	"homelet-backend/internal/security"
	"homelet-backend/internal/service"
	"homelet-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Homelet Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Media Storage
	fileStore, err := storage.NewLocalStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize media storage", "error", err)
		log.Fatalf("Failed to initialize media storage: %v", err)
	}
	logger.Info("Using local media storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.Users, store.AuthTokens, tokenManager)
	userSvc := service.NewUserService(store.Users)
	houseSvc := service.NewHouseService(store.Houses, store.Favorites)
	orderSvc := service.NewOrderService(store.Orders, store.Houses, store.Users, emailSvc)
	locationSvc := service.NewLocationService(store.Regions)
	annSvc := service.NewAnnouncementService(store.Announcements)
	chatSvc := service.NewChatService(store.Chat, store.Users)
	supportSvc := service.NewSupportService(store.Support)
	statsSvc := service.NewStatisticsService(store.Orders, store.Houses)
	certSvc := service.NewCertificationService(store.Certifications, store.Users)
	contactSvc := service.NewContactService(store.Contacts, store.Houses)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		User:          userSvc,
		House:         houseSvc,
		Order:         orderSvc,
		Location:      locationSvc,
		Announcement:  annSvc,
		Chat:          chatSvc,
		Support:       supportSvc,
		Statistics:    statsSvc,
		Certification: certSvc,
		Contact:       contactSvc,
		Files:         fileStore,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
