package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"famlink-api/config"
	deliveryHttp "famlink-api/internal/delivery/http"
	"famlink-api/internal/delivery/http/handler"
	"famlink-api/internal/delivery/http/middleware"
	"famlink-api/internal/infrastructure/database"
	"famlink-api/internal/repository"
	"famlink-api/internal/service"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/clock"
	"famlink-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db)
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
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize clock and external service stubs
	clk := clock.New()
	responder := service.NewKeywordResponder()
	objectStore := service.NewStubObjectStore(cfg.S3.Bucket, cfg.S3.Region)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	childRepo := repository.NewChildRepository(db)
	recordRepo := repository.NewMedicalRecordRepository(db)
	hospitalRepo := repository.NewHospitalRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	postRepo := repository.NewCommunityPostRepository(db)
	commentRepo := repository.NewCommunityCommentRepository(db)
	likeRepo := repository.NewCommunityLikeRepository(db)
	conversationRepo := repository.NewChatConversationRepository(db)

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(userRepo, clk)
	childUsecase := usecase.NewChildUsecase(childRepo, userRepo, recordRepo, appointmentRepo, clk)
	recordUsecase := usecase.NewMedicalRecordUsecase(recordRepo, childRepo, clk)
	hospitalUsecase := usecase.NewHospitalUsecase(hospitalRepo, appointmentRepo, clk)
	appointmentUsecase := usecase.NewAppointmentUsecase(appointmentRepo, hospitalRepo, userRepo, childRepo, clk)
	communityUsecase := usecase.NewCommunityUsecase(postRepo, commentRepo, likeRepo, userRepo)
	chatbotUsecase := usecase.NewChatbotUsecase(conversationRepo, userRepo, childRepo, responder, clk)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userUsecase, customValidator, log)
	childHandler := handler.NewChildHandler(childUsecase, customValidator, log)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator, log)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, log)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, log)
	communityHandler := handler.NewCommunityHandler(communityUsecase, customValidator, log)
	chatbotHandler := handler.NewChatbotHandler(chatbotUsecase, customValidator, log)
	uploadHandler := handler.NewUploadHandler(objectStore, customValidator, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		userHandler,
		childHandler,
		recordHandler,
		hospitalHandler,
		appointmentHandler,
		communityHandler,
		chatbotHandler,
		uploadHandler,
		corsMiddleware,
		requestLoggerMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
