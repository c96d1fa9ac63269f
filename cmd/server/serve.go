package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpdelivery "communityday/internal/delivery/http"
	"communityday/internal/delivery/http/controllers"
	"communityday/internal/delivery/http/middleware"
	"communityday/internal/repository/postgres"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

func runServer(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, a.db); err != nil {
			return err
		}
		a.logger.Info("schema applied")
	}

	logger := a.logger
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:       controllers.NewAuthController(logger, a.auth, a.cfg.TokenTTL, a.cfg.IsProduction()),
		Users:      controllers.NewUserController(logger, a.users),
		Years:      controllers.NewYearController(logger, a.years),
		Speakers:   controllers.NewSpeakerController(logger, a.speakers),
		Agenda:     controllers.NewAgendaController(logger, a.agenda),
		Sponsors:   controllers.NewSponsorController(logger, a.sponsors),
		Organizers: controllers.NewOrganizerController(logger, a.orgs),
		Volunteers: controllers.NewVolunteerController(logger, a.vols),
		Gallery:    controllers.NewGalleryController(logger, a.gallery),
		Venue:      controllers.NewVenueController(logger, a.venue),
		Contact:    controllers.NewContactController(logger, a.contact),
		Settings:   controllers.NewSettingsController(logger, a.settings),
		Upload:     controllers.NewUploadController(logger, a.media),
		Dashboard:  controllers.NewDashboardController(logger, a.dashboard),
		Health:     controllers.NewHealthController(logger, a.db),
	}, a.tokens, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(a.cfg.AllowedOrigins, mux))
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", a.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
