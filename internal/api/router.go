package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nucleobets/backend/internal/api/handler"
	"github.com/nucleobets/backend/internal/api/middleware"
	"github.com/nucleobets/backend/internal/services/analysis"
	"github.com/nucleobets/backend/internal/services/auth"
	"github.com/nucleobets/backend/internal/services/tip"
	"github.com/nucleobets/backend/internal/services/user"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	UserService     *user.Service
	AnalysisService *analysis.Service
	TipService      *tip.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	userHandler := handler.NewUserHandler(cfg.UserService)
	analysisHandler := handler.NewAnalysisHandler(cfg.AnalysisService)
	tipHandler := handler.NewTipHandler(cfg.TipService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.AdminOnly()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", authHandler.ChangePassword).Methods(http.MethodPut)

	// Admin routes (auth + role gate)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/approve", userHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/deactivate", userHandler.Deactivate).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", userHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/analyses", analysisHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/analyses", analysisHandler.ListAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/analyses/{id}", analysisHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/analyses/{id}", analysisHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/tips", tipHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/tips", tipHandler.ListAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/tips/{id}", tipHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/tips/{id}", tipHandler.Delete).Methods(http.MethodDelete)

	// Read-only routes for any authenticated approved user
	reader := api.NewRoute().Subrouter()
	reader.Use(authMiddleware)
	reader.HandleFunc("/analyses", analysisHandler.ListPublic).Methods(http.MethodGet)
	reader.HandleFunc("/tips", tipHandler.ListPublic).Methods(http.MethodGet)
	reader.HandleFunc("/stats", analysisHandler.Stats).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
