package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"communityday/config"
	"communityday/internal/adapters/auth"
	"communityday/internal/adapters/email"
	"communityday/internal/adapters/storage"
	"communityday/internal/domain"
	"communityday/internal/repository/postgres"
	"communityday/internal/services"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
	tokens *auth.JWT

	years     domain.YearService
	users     domain.UserService
	auth      domain.AuthService
	media     domain.MediaService
	speakers  domain.SpeakerService
	agenda    domain.AgendaService
	sponsors  domain.SponsorService
	orgs      domain.OrganizerService
	vols      domain.VolunteerService
	gallery   domain.GalleryService
	venue     domain.VenueService
	contact   domain.ContactService
	settings  domain.SettingsService
	dashboard domain.DashboardService
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// newApp loads configuration, connects to Postgres and builds every service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	db, err := openDB(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	timeout := cfg.RequestTimeout
	tokens := auth.NewJWT(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mail.SESRegion,
			AccessKeyID:     cfg.Mail.SESAccessKeyID,
			SecretAccessKey: cfg.Mail.SESSecretAccessKey,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	if cfg.S3.Bucket == "" {
		logger.Warn("S3_BUCKET is not set; uploads will fail")
	}
	s3Client := storage.NewS3Client(storage.S3Config{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		UsePathStyle:    cfg.S3.UsePathStyle,
	})
	media := services.NewMediaService(storage.NewS3Store(s3Client, cfg.S3.Bucket), cfg.S3.PublicBaseURL, timeout)

	userRepo := postgres.NewUserRepository(db)
	yearRepo := postgres.NewYearRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	agendaRepo := postgres.NewAgendaRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	organizerRepo := postgres.NewOrganizerRepository(db)
	volunteerRepo := postgres.NewVolunteerRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)

	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		tokens:    tokens,
		years:     services.NewYearService(yearRepo, timeout),
		users:     services.NewUserService(userRepo, hasher, emailService, logger, timeout),
		auth:      services.NewAuthService(userRepo, yearRepo, hasher, tokens, cfg.TokenTTL, timeout),
		media:     media,
		speakers:  services.NewSpeakerService(speakerRepo, media, logger, timeout),
		agenda:    services.NewAgendaService(agendaRepo, speakerRepo, timeout),
		sponsors:  services.NewSponsorService(sponsorRepo, media, logger, timeout),
		orgs:      services.NewOrganizerService(organizerRepo, media, logger, timeout),
		vols:      services.NewVolunteerService(volunteerRepo, media, logger, timeout),
		gallery:   services.NewGalleryService(galleryRepo, media, logger, timeout),
		venue:     services.NewVenueService(venueRepo, media, logger, timeout),
		contact:   services.NewContactService(contactRepo, timeout),
		settings:  services.NewSettingsService(settingsRepo, timeout),
		dashboard: services.NewDashboardService(services.DashboardSources{
			Speakers:   speakerRepo,
			Agenda:     agendaRepo,
			Gallery:    galleryRepo,
			Sponsors:   sponsorRepo,
			Organizers: organizerRepo,
			Volunteers: volunteerRepo,
			Venue:      venueRepo,
			Contact:    contactRepo,
			Settings:   settingsRepo,
		}, logger, timeout),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
