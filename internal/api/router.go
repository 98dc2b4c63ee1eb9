package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yegors/eco-flight/pkg/logger"
)

// Router builds the HTTP routing table
type Router struct {
	handler *Handler
	logger  *logger.Logger
}

// NewRouter creates a new router around the given handler
func NewRouter(handler *Handler, log *logger.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  log.Named("router"),
	}
}

// Routes returns the assembled chi handler
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	allowedOrigins := rt.handler.config.Server.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/airports", rt.handler.GetAirports)
		r.Get("/airports/{code}", rt.handler.GetAirportByCode)
		r.Post("/routes", rt.handler.CreateRoute)
		r.Get("/traffic", rt.handler.GetTraffic)
		r.Post("/ecoplan", rt.handler.CreateEcoPlan)
		r.Get("/health", rt.handler.GetHealth)
	})

	r.Get("/ws", rt.handler.HandleWebSocket)

	// Everything else is the UI bundle
	staticHandler := NewStaticFileHandler(rt.handler.config.Server.StaticFilesDir, rt.logger)
	r.Handle("/*", staticHandler)

	return r
}
