package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-trainer-booking/config"
	deliveryHttp "go-trainer-booking/internal/delivery/http"
	"go-trainer-booking/internal/delivery/http/handler"
	"go-trainer-booking/internal/delivery/http/middleware"
	"go-trainer-booking/internal/infrastructure/cache"
	"go-trainer-booking/internal/infrastructure/database"
	"go-trainer-booking/internal/infrastructure/mail"
	"go-trainer-booking/internal/infrastructure/payments"
	"go-trainer-booking/internal/repository"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/jwt"
	"go-trainer-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	paymentGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}
	mailer := mail.NewSMTPMailer(cfg.Mail, log)

	// Repositories
	userRepo := repository.NewUserRepository()
	bookingRepo := repository.NewBookingRepository()
	paymentRepo := repository.NewPaymentRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	serviceRepo := repository.NewServiceRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	planRepo := repository.NewPlanRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg, userRepo, jwtService, redisClient)
	serviceUsecase := usecase.NewServiceUsecase(log, serviceRepo)
	workshopUsecase := usecase.NewWorkshopUsecase(log, workshopRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, availabilityRepo, serviceRepo)
	bookingUsecase := usecase.NewBookingUsecase(db, log, cfg, bookingRepo, paymentRepo, availabilityRepo, serviceRepo, workshopRepo, paymentGateway)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, cfg, paymentRepo, bookingRepo, availabilityRepo, leadRepo, planRepo, paymentGateway, mailer)
	planUsecase := usecase.NewPlanUsecase(log, planRepo)
	leadUsecase := usecase.NewLeadUsecase(log, leadRepo, planRepo)
	settingUsecase := usecase.NewSettingUsecase(log, settingRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	workshopHandler := handler.NewWorkshopHandler(workshopUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator, cfg)
	planHandler := handler.NewPlanHandler(planUsecase, customValidator)
	leadHandler := handler.NewLeadHandler(leadUsecase, customValidator)
	settingHandler := handler.NewSettingHandler(settingUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.FrontendBaseURL)

	router := deliveryHttp.NewRouter(
		authHandler,
		serviceHandler,
		workshopHandler,
		availabilityHandler,
		bookingHandler,
		paymentHandler,
		planHandler,
		leadHandler,
		settingHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases database and cache connections
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			logrus.Errorf("Failed to close Redis connection: %v", err)
		}
	}
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("Failed to close database connection: %v", err)
			}
		}
	}
}
