package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/infrastructure/logger"
	"clinic-booking/internal/infrastructure/mail"
	"clinic-booking/internal/infrastructure/metrics"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := logger.New(cfg.Log)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Apply schema before gorm opens its pool
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	metrics.Register()

	// Initialize all layers
	server, authUsecase := initializeServer(cfg, log, db, redisClient)
	app.Server = server

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := authUsecase.EnsureAdmin(ctx, cfg.Admin); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	return app, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, usecase.AuthUsecase) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	scheduleRepo := repository.NewDoctorScheduleRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	cancelledRepo := repository.NewCancelledBookingRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Dates are judged on the clinic's calendar
	clinicLocation := cfg.DB.Location()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	availabilityService := service.NewAvailabilityService(log, scheduleRepo, timeSlotRepo, bookingRepo)
	slotHoldService := service.NewSlotHoldService(redisClient, log, cfg.Booking.SlotHoldTTL)
	notificationService := service.NewNotificationService(log, mail.NewSMTPMailer(cfg.Mail), cfg.Booking.ClinicName)
	exportService := service.NewExportService(cfg.Booking.ExportSheet)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, roleRepo, jwtService, redisClient, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, auditService)
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(log, scheduleRepo, doctorRepo, auditService)
	timeSlotUsecase := usecase.NewTimeSlotUsecase(log, timeSlotRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, doctorRepo, availabilityService, clinicLocation)
	bookingUsecase := usecase.NewBookingUsecase(
		log, doctorRepo, patientRepo, bookingRepo, cancelledRepo,
		availabilityService, slotHoldService, notificationService, auditService,
		cfg.Booking.PhoneRegion, clinicLocation,
	)
	adminBookingUsecase := usecase.NewAdminBookingUsecase(log, bookingRepo, cancelledRepo, notificationService, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	messageUsecase := usecase.NewContactMessageUsecase(log, messageRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, doctorRepo, patientRepo, bookingRepo, messageRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)
	exportUsecase := usecase.NewExportUsecase(log, doctorRepo, patientRepo, bookingRepo, cancelledRepo, messageRepo, exportService)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:           handler.NewAuthHandler(authUsecase, customValidator),
		Doctor:         handler.NewDoctorHandler(doctorUsecase, customValidator),
		DoctorSchedule: handler.NewDoctorScheduleHandler(scheduleUsecase, customValidator),
		TimeSlot:       handler.NewTimeSlotHandler(timeSlotUsecase, customValidator),
		Availability:   handler.NewAvailabilityHandler(availabilityUsecase),
		Booking:        handler.NewBookingHandler(bookingUsecase, customValidator),
		AdminBooking:   handler.NewAdminBookingHandler(adminBookingUsecase, customValidator),
		Patient:        handler.NewPatientHandler(patientUsecase),
		Contact:        handler.NewContactHandler(messageUsecase, customValidator),
		Dashboard:      handler.NewDashboardHandler(dashboardUsecase),
		Export:         handler.NewExportHandler(exportUsecase),
		AuditLog:       handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimit)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, rateLimitMiddleware, loggingMiddleware)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, authUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
