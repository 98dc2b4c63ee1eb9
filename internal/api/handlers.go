package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yegors/eco-flight/internal/airports"
	"github.com/yegors/eco-flight/internal/config"
	"github.com/yegors/eco-flight/internal/ecoplan"
	"github.com/yegors/eco-flight/internal/route"
	"github.com/yegors/eco-flight/internal/traffic"
	"github.com/yegors/eco-flight/internal/websocket"
	"github.com/yegors/eco-flight/pkg/logger"
)

// SnapshotProvider exposes the most recent traffic snapshot
type SnapshotProvider interface {
	Snapshot() traffic.Snapshot
}

// Handler contains the API handlers
type Handler struct {
	directory      *airports.Directory
	routeService   *route.Service
	trafficService SnapshotProvider
	ecoplanService *ecoplan.Service
	config         *config.Config
	logger         *logger.Logger
	wsServer       *websocket.Server
	startedAt      time.Time
}

// NewHandler creates a new API handler. trafficService and ecoplanService may
// be nil when the corresponding feature is disabled.
func NewHandler(
	directory *airports.Directory,
	routeService *route.Service,
	trafficService SnapshotProvider,
	ecoplanService *ecoplan.Service,
	cfg *config.Config,
	log *logger.Logger,
	wsServer *websocket.Server,
) *Handler {
	return &Handler{
		directory:      directory,
		routeService:   routeService,
		trafficService: trafficService,
		ecoplanService: ecoplanService,
		config:         cfg,
		logger:         log.Named("api-handler"),
		wsServer:       wsServer,
		startedAt:      time.Now().UTC(),
	}
}

// routeRequest is the body of POST /routes and POST /ecoplan
type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// GetAirports returns the full airport directory
func (h *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"airports": h.directory.List(),
	})
}

// GetAirportByCode returns one airport by IATA code
func (h *Handler) GetAirportByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	airport, ok := h.directory.Get(code)
	if !ok {
		http.Error(w, "Airport not found: "+code, http.StatusNotFound)
		return
	}
	WriteJSON(w, http.StatusOK, airport)
}

// CreateRoute computes distance, emissions, and courses for an airport pair
func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	calc, err := h.routeService.Calculate(req.Origin, req.Destination)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Debug("Route calculated",
		logger.String("origin", calc.Origin.Code),
		logger.String("destination", calc.Destination.Code),
		logger.Float64("distance_km", calc.DistanceKm))

	WriteJSON(w, http.StatusOK, calc)
}

// GetTraffic returns the current snapshot narrowed by the query parameters.
// An unreachable feed still answers 200 with an empty list.
func (h *Handler) GetTraffic(w http.ResponseWriter, r *http.Request) {
	snap := traffic.Snapshot{Status: traffic.StatusUnavailable, Flights: []traffic.FlightState{}}
	if h.trafficService != nil {
		snap = h.trafficService.Snapshot()
	}

	q := traffic.Query{
		Filter:     r.URL.Query().Get("filter"),
		SortKey:    r.URL.Query().Get("sort"),
		Descending: r.URL.Query().Get("order") == "desc",
	}
	if err := q.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flights := q.Apply(snap.Flights)
	WriteJSON(w, http.StatusOK, map[string]any{
		"fetched_at": snap.FetchedAt,
		"status":     snap.Status,
		"count":      len(flights),
		"flights":    flights,
	})
}

// CreateEcoPlan computes the route and asks the AI provider for a plan
func (h *Handler) CreateEcoPlan(w http.ResponseWriter, r *http.Request) {
	if h.ecoplanService == nil {
		http.Error(w, "Eco plan service is disabled", http.StatusServiceUnavailable)
		return
	}

	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	calc, err := h.routeService.Calculate(req.Origin, req.Destination)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.ecoplanService.Generate(r.Context(), calc)
	if err != nil {
		h.logger.Error("Eco plan generation failed", logger.Error(err))
		http.Error(w, "Eco plan generation failed", http.StatusBadGateway)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"plan":  plan.Text,
		"html":  plan.HTML,
		"route": calc,
	})
}

// GetHealth returns service liveness and uptime
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}

// HandleWebSocket upgrades the connection and hands it to the hub
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	h.wsServer.HandleConnection(w, r)
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
