package http

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/controllers"
	"communityday/internal/delivery/http/middleware"
	"communityday/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Years      *controllers.YearController
	Speakers   *controllers.SpeakerController
	Agenda     *controllers.AgendaController
	Sponsors   *controllers.SponsorController
	Organizers *controllers.OrganizerController
	Volunteers *controllers.VolunteerController
	Gallery    *controllers.GalleryController
	Venue      *controllers.VenueController
	Contact    *controllers.ContactController
	Settings   *controllers.SettingsController
	Upload     *controllers.UploadController
	Dashboard  *controllers.DashboardController
	Health     *controllers.HealthController
}

// collection is the handler set shared by the year-scoped list entities.
type collection interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// singleton is the handler set of the one-per-year entities.
type singleton interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// NewRouter initializes the HTTP router with all application routes.
// Reads are public; every write requires a session, and user management plus year creation require ADMIN.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	mux.HandleFunc("GET /health", c.Health.Health)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", c.Auth.Logout)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))

	// Users
	mux.HandleFunc("GET /users", admin(c.Users.List))
	mux.HandleFunc("POST /users", admin(c.Users.Create))
	mux.HandleFunc("GET /users/{id}", admin(c.Users.Get))
	mux.HandleFunc("PUT /users/{id}", admin(c.Users.Update))
	mux.HandleFunc("DELETE /users/{id}", admin(c.Users.Delete))

	// Years
	mux.HandleFunc("GET /years", c.Years.List)
	mux.HandleFunc("GET /years/{id}", c.Years.Get)
	mux.HandleFunc("POST /years", admin(c.Years.Create))

	// Year-scoped content
	mountCollection(mux, "/speakers", c.Speakers, auth)
	mountCollection(mux, "/agenda", c.Agenda, auth)
	mountCollection(mux, "/sponsors", c.Sponsors, auth)
	mountCollection(mux, "/organizers", c.Organizers, auth)
	mountCollection(mux, "/volunteers", c.Volunteers, auth)
	mountCollection(mux, "/gallery", c.Gallery, auth)
	mountSingleton(mux, "/venue", c.Venue, auth)
	mountSingleton(mux, "/contact", c.Contact, auth)
	mountSingleton(mux, "/settings", c.Settings, auth)

	// Media
	mux.HandleFunc("POST /upload", auth(c.Upload.Upload))
	mux.HandleFunc("DELETE /upload", auth(c.Upload.Delete))

	mux.HandleFunc("GET /dashboard", auth(c.Dashboard.Get))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func mountCollection(mux *http.ServeMux, base string, h collection, auth func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("POST "+base, auth(h.Create))
	mux.HandleFunc("PUT "+base+"/{id}", auth(h.Update))
	mux.HandleFunc("DELETE "+base+"/{id}", auth(h.Delete))
}

// mountSingleton accepts both POST and PUT for the upsert.
func mountSingleton(mux *http.ServeMux, base string, h singleton, auth func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("GET "+base, h.Get)
	mux.HandleFunc("POST "+base, auth(h.Upsert))
	mux.HandleFunc("PUT "+base, auth(h.Upsert))
	mux.HandleFunc("DELETE "+base+"/{id}", auth(h.Delete))
}
