// Package web provides the HTTP API: event and agenda CRUD, workbook
// imports, public registration submissions, and asset uploads.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eventdesk/agendahub/internal/assets"
	"github.com/eventdesk/agendahub/internal/config"
	"github.com/eventdesk/agendahub/internal/core"
)

// Server is the HTTP server for the event service.
type Server struct {
	cfg     *config.Config
	service *core.Service
	assets  *assets.Store
	router  *chi.Mux
	server  *http.Server
}

// NewServer wires the router with middleware and routes.
func NewServer(cfg *config.Config, service *core.Service, assetStore *assets.Store) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
		assets:  assetStore,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(trustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.middleware)
	}
}

func (s *Server) setupRoutes() {
	// Uploaded images are served straight from disk.
	if s.assets != nil {
		s.router.Handle(s.cfg.Assets.BaseURL+"/*",
			http.StripPrefix(s.cfg.Assets.BaseURL+"/",
				http.FileServer(http.Dir(s.assets.Dir()))))
	}

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", s.handleListEvents)
			r.Post("/", s.handleCreateEvent)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", s.handleGetEvent)
				r.Put("/", s.handleUpdateEvent)
				r.Delete("/", s.handleDeleteEvent)

				r.Get("/agenda", s.handleFullAgenda)

				r.Get("/days", s.handleListDays)
				r.Post("/days", s.handleCreateDay)

				r.Get("/experts", s.handleListExperts)
				r.Post("/experts", s.handleCreateExpert)
				r.Get("/companies", s.handleListCompanies)
				r.Post("/companies", s.handleCreateCompany)

				// Import endpoints get their own tighter rate limit on
				// top of the global one.
				r.Group(func(r chi.Router) {
					if s.cfg.Rate.Enabled {
						importLimiter := newRateLimiter(s.cfg.Rate.ImportLimit, time.Minute)
						r.Use(importLimiter.middleware)
					}
					r.Post("/import", s.handleImportWorkbook)
					r.Post("/import/sheet", s.handleImportGoogleSheet)
				})

				r.Post("/submissions/experts", s.handleSubmitExpert)
				r.Get("/submissions/experts", s.handleListExpertSubmissions)
				r.Post("/submissions/companies", s.handleSubmitCompany)
				r.Get("/submissions/companies", s.handleListCompanySubmissions)

				r.Get("/forms/{entityType}", s.handleGetFormConfig)
				r.Put("/forms/{entityType}", s.handleSaveFormConfig)
			})
		})

		r.Route("/days/{dayID}", func(r chi.Router) {
			r.Put("/", s.handleUpdateDay)
			r.Delete("/", s.handleDeleteDay)
			r.Get("/slots", s.handleListSlots)
			r.Post("/slots", s.handleCreateSlot)
		})

		r.Route("/slots/{slotID}", func(r chi.Router) {
			r.Get("/", s.handleGetSlot)
			r.Put("/", s.handleUpdateSlot)
			r.Delete("/", s.handleDeleteSlot)
		})

		r.Route("/experts/{expertID}", func(r chi.Router) {
			r.Get("/", s.handleGetExpert)
			r.Put("/", s.handleUpdateExpert)
			r.Delete("/", s.handleDeleteExpert)
		})

		r.Route("/companies/{companyID}", func(r chi.Router) {
			r.Get("/", s.handleGetCompany)
			r.Put("/", s.handleUpdateCompany)
			r.Delete("/", s.handleDeleteCompany)
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/experts/{submissionID}/approve", s.handleApproveExpertSubmission)
			r.Post("/experts/{submissionID}/reject", s.handleRejectExpertSubmission)
			r.Post("/companies/{submissionID}/approve", s.handleApproveCompanySubmission)
			r.Post("/companies/{submissionID}/reject", s.handleRejectCompanySubmission)
		})

		r.Get("/import/template", s.handleDownloadTemplate)

		r.Post("/assets", s.handleUploadAsset)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start begins listening for HTTP requests and blocks until the server
// stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
