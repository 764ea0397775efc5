// Package router sets up all HTTP routes and middleware chains for the
// Afterglow site. It organizes routes into public, consent, and admin
// groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"afterglow/internal/handlers"
	"afterglow/internal/middleware"
	"afterglow/internal/session"
	"afterglow/web"
)

// loginRateLimit allows 10 login attempts per IP per minute.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, consentHandlers *handlers.Consent, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))
	r.Use(middleware.LoadConsent(secureCookies))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets (CSS, JS, placeholder images) embedded in the binary.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// Consent gate: plain form posts from the age-gate modal and footer.
	r.Post("/consent/accept", consentHandlers.Accept)
	r.Post("/consent/revoke", consentHandlers.Revoke)

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		// Login is rate limited per IP to slow down credential stuffing.
		loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Get("/login", auth.LoginPage)
			r.Post("/login", auth.LoginSubmit)
		})
		r.Post("/logout", auth.Logout)

		// Authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			// Dashboard
			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)

			// Previews
			r.Route("/previews", func(r chi.Router) {
				r.Get("/", admin.PreviewsList)
				r.Get("/new", admin.PreviewNew)
				r.Post("/", admin.PreviewCreate)
				r.Get("/{id}", admin.PreviewEdit)
				r.Post("/{id}", admin.PreviewUpdate)
				r.Delete("/{id}", admin.PreviewDelete)
				r.Post("/{id}/poster", admin.PreviewPosterUpload)
				r.Post("/{id}/video", admin.PreviewVideoUpload)
			})

			// Social links
			r.Route("/links", func(r chi.Router) {
				r.Get("/", admin.LinksList)
				r.Get("/new", admin.LinkNew)
				r.Post("/", admin.LinkCreate)
				r.Get("/{id}", admin.LinkEdit)
				r.Post("/{id}", admin.LinkUpdate)
				r.Delete("/{id}", admin.LinkDelete)
			})

			// Gallery
			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", admin.GalleryList)
				r.Post("/", admin.GalleryUpload)
				r.Post("/{id}/order", admin.GallerySetOrder)
				r.Delete("/{id}", admin.GalleryDelete)
			})

			// Settings
			r.Get("/settings", admin.SettingsPage)
			r.Post("/settings", admin.SettingsSave)
		})
	})

	// Public routes.
	r.Get("/", public.Home)
	r.Get("/previews", public.Previews)
	r.Get("/terms", public.Terms)
	r.Get("/privacy", public.Privacy)
	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
