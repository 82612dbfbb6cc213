package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wortle/wortle-server/internal/api/apierr"
	"github.com/wortle/wortle-server/internal/api/handler"
	apimiddleware "github.com/wortle/wortle-server/internal/api/middleware"
	"github.com/wortle/wortle-server/internal/middleware"
	"github.com/wortle/wortle-server/internal/services/example"
	"github.com/wortle/wortle-server/internal/services/identity"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	IdentityService *identity.Service
	ExampleService  *example.Service
	CORSOrigin      string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = methodNotAllowedHandler()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.IdentityService)
	exampleHandler := handler.NewExampleHandler(cfg.ExampleService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowedHandler()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/auth/google", authHandler.ResolveGoogle).Methods(http.MethodPost)
	api.HandleFunc("/example", exampleHandler.Generate).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// CORS wraps everything so preflight is answered before routing and
	// method checks run
	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	return apimiddleware.CORS(origin)(r)
}

func methodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
