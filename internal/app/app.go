package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"workbridge_backend/database"
	"workbridge_backend/internal/auth"
	"workbridge_backend/internal/config"
	"workbridge_backend/internal/email"
	"workbridge_backend/internal/events"
	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/handlers"
	"workbridge_backend/internal/i18n"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/middleware"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/routes"
	"workbridge_backend/internal/services"
	"workbridge_backend/internal/storage"
	"workbridge_backend/internal/validator"
	"workbridge_backend/internal/workers"
	"workbridge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// App is the assembled backend: router plus the background pieces that
// live as long as the process.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *gin.Engine
	Hub      *events.Hub
	Services *services.ServiceContainer

	store storage.Storage
	repos repositorySet
}

type repositorySet struct {
	users      repositories.UserRepository
	jobs       repositories.JobRepository
	candidates repositories.CandidateRepository
	inquiries  repositories.InquiryRepository
	analytics  repositories.AnalyticsRepository
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...")
	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(ctx, db); err != nil {
			logger.Fatal("Database migration failed", "error", err)
		}
	}

	a, err := New(cfg, db)
	if err != nil {
		logger.Fatal("Failed to initialize application", "error", err)
	}

	if err := a.seedFirstAdmin(ctx); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	go a.Hub.Run(ctx)
	if cfg.Worker.Enabled {
		if err := a.startWorkers(ctx); err != nil {
			logger.Fatal("Failed to schedule workers", "error", err)
		}
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	a.Services.InquiryService.Wait()
}

// New wires storage, mail, services and handlers around db. It does not
// start any goroutines.
func New(cfg *config.Config, db *gorm.DB) (*App, error) {
	auth.Configure(cfg.JWT.Secret, cfg.JWTTTL())

	resolver, err := i18n.DefaultResolver()
	if err != nil {
		return nil, fmt.Errorf("locale tables: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
		SigningKey: cfg.JWT.Secret,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer, renderer, err := newMailer(cfg)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}

	a := &App{
		Config: cfg,
		DB:     db,
		Hub:    events.NewHub(),
		store:  store,
		repos: repositorySet{
			users:      repositories.NewUserRepository(),
			jobs:       repositories.NewJobRepository(),
			candidates: repositories.NewCandidateRepository(),
			inquiries:  repositories.NewInquiryRepository(),
			analytics:  repositories.NewAnalyticsRepository(),
		},
	}
	a.Services = a.initializeServices(mailer, renderer, resolver)
	a.Router = a.initializeRouter(resolver)
	return a, nil
}

func newMailer(cfg *config.Config) (email.Provider, email.TemplateRenderer, error) {
	templates, err := email.NewDefaultTemplateManager(nil)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, messages are only logged")
		return email.NewLogProvider(templates), templates, nil
	}

	smtp := email.DefaultConfig()
	smtp.Host = cfg.Email.SMTPHost
	smtp.Port = cfg.Email.SMTPPort
	smtp.Username = cfg.Email.SMTPUser
	smtp.Password = cfg.Email.SMTPPassword
	smtp.FromEmail = cfg.Email.FromEmail
	smtp.FromName = cfg.Email.FromName

	provider := email.NewGomailProvider(smtp, templates)
	if err := provider.Validate(); err != nil {
		return nil, nil, err
	}
	return provider, templates, nil
}

func (a *App) initializeServices(mailer email.Provider, renderer email.TemplateRenderer, resolver *i18n.Resolver) *services.ServiceContainer {
	cfg := a.Config

	var extractor services.TextExtractor
	if cfg.Upload.ExtractText {
		extractor = services.DocconvExtractor{}
	}

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(a.repos.users),
		JobService:         services.NewJobService(a.repos.jobs),
		ApplicationService: services.NewApplicationService(a.repos.candidates, a.store, extractor, a.Hub, cfg.Storage.CVPrefix),
		InquiryService:     services.NewInquiryService(a.repos.inquiries, mailer, a.Hub, cfg.Email.InboxEmail),
		ContactService:     services.NewContactService(mailer, renderer, resolver, cfg.Email.InboxEmail),
		AdminService:       services.NewAdminService(a.repos.jobs, a.repos.inquiries, a.repos.candidates, a.store, a.Hub),
		AnalyticsService:   services.NewAnalyticsService(a.repos.analytics),
	}
}

func (a *App) initializeHandlers() *handlers.AppHandlers {
	cfg := a.Config
	base := handlers.NewBaseHandler(validator.New())

	policy := forms.AttachmentPolicy{
		MaxSize:      cfg.Upload.MaxSize,
		ContentTypes: cfg.Upload.AllowedTypes,
		Extensions:   cfg.Upload.AllowedExtensions,
	}

	workflow := models.OpenStatusWorkflow
	if cfg.Admin.StrictStatusWorkflow {
		workflow = models.StrictStatusWorkflow
	}

	var verifier handlers.TokenVerifier
	if local, ok := a.store.(*storage.LocalStorage); ok {
		verifier = local
	}

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, a.Services.AuthService),
		JobHandler:         handlers.NewJobHandler(base, a.Services.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(base, a.Services.ApplicationService, policy, cfg.SuccessResetDelay().Milliseconds()),
		IntakeHandler:      handlers.NewIntakeHandler(base, a.Services.InquiryService, a.Services.ContactService),
		AdminHandler:       handlers.NewAdminHandler(base, a.Services.AdminService, a.store, workflow, cfg.SignedURLTTL()),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(base, a.Services.AnalyticsService),
		EventsHandler:      handlers.NewEventsHandler(base, a.Hub, cfg.CORS.AllowedOrigins),
		I18nHandler:        handlers.NewI18nHandler(),
		FileHandler:        handlers.NewFileHandler(base, a.store, verifier),
	}
}

func (a *App) initializeRouter(resolver *i18n.Resolver) *gin.Engine {
	if !a.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(a.Config.CORS.AllowedOrigins))
	router.Use(middleware.LanguageMiddleware(resolver))
	router.Use(middleware.DBMiddleware(a.DB))

	routes.RegisterRoutes(router, a.initializeHandlers(), a.DB)
	return router
}

func (a *App) startWorkers(ctx context.Context) error {
	cfg := a.Config
	scheduler := workers.NewScheduler()

	sweeper := workers.NewOrphanSweeper(a.DB, a.store, a.repos.candidates, cfg.Storage.CVPrefix, cfg.OrphanGrace())
	if err := scheduler.Add(ctx, cfg.Worker.OrphanSweepSpec, sweeper); err != nil {
		return err
	}
	expiry := workers.NewJobExpiryWorker(a.DB, a.repos.jobs)
	if err := scheduler.Add(ctx, cfg.Worker.JobExpirySpec, expiry); err != nil {
		return err
	}

	scheduler.Start(ctx)
	return nil
}

func (a *App) seedFirstAdmin(ctx context.Context) error {
	adminEmail := a.Config.Admin.FirstAdminEmail
	adminPassword := a.Config.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	created, err := a.Services.AuthService.SeedAdmin(ctx, a.DB, adminEmail, adminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Warn("First admin user created", "email", adminEmail)
	} else {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
	}
	return nil
}
