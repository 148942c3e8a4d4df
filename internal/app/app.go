package app

import (
	"errors"
	"fmt"

	"fithub_backend/database"
	"fithub_backend/internal/config"
	"fithub_backend/internal/email"
	"fithub_backend/internal/handlers"
	"fithub_backend/internal/logger"
	"fithub_backend/internal/middleware"
	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/routes"
	"fithub_backend/internal/services"
	"fithub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		templates := email.NewTemplateManager()
		emailProvider = email.NewGomailProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		}, templates)
	} else {
		logger.Warn("Email-провайдер отключен конфигом. Используется MOCK.")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	tutorialRepo := repositories.NewTutorialRepository(gormDB)
	queryRepo := repositories.NewQueryRepository(gormDB)

	applicationService := services.NewApplicationService(appRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo, applicationService)
	tutorialService := services.NewTutorialService(tutorialRepo, userRepo)
	queryService := services.NewQueryService(queryRepo, userRepo)
	analyticsService := services.NewAnalyticsService(userRepo, appRepo, tutorialRepo, queryRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		ApplicationService: applicationService,
		TutorialService:    tutorialService,
		QueryService:       queryService,
		AnalyticsService:   analyticsService,
		EmailProvider:      emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		Application: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		Tutorial:    handlers.NewTutorialHandler(baseHandler, container.TutorialService),
		Query:       handlers.NewQueryHandler(baseHandler, container.QueryService),
		Analytics:   handlers.NewAnalyticsHandler(baseHandler, container.AnalyticsService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создаёт первого админа из конфига, если его ещё нет.
// Регистрация роли admin через /signup закрыта, сид - единственный путь.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin_email/first_admin_password is not set in config. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)
	return nil
}
