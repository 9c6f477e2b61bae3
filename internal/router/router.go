package router

import (
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/config"
	"github.com/Dias221467/Alumni_Connect/internal/handlers"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
	"github.com/Dias221467/Alumni_Connect/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewRouter configures all routes and wraps them with CORS.
func NewRouter(cfg *config.Config, sessions *session.Manager) http.Handler {
	mentorshipHandler := handlers.NewMentorshipHandler(sessions)
	directoryHandler := handlers.NewDirectoryHandler(sessions)
	notificationHandler := handlers.NewNotificationHandler(sessions)
	sessionHandler := handlers.NewSessionHandler(sessions)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.Use(middleware.UpdateLastActiveMiddleware(sessions))

	// Mentorship routes
	mentorship := protected.PathPrefix("/mentorship/requests").Subrouter()
	mentorship.HandleFunc("", mentorshipHandler.GetRequestsHandler).Methods("GET")
	mentorship.HandleFunc("/refresh", mentorshipHandler.RefreshRequestsHandler).Methods("POST")
	mentorship.HandleFunc("/{id}/select", mentorshipHandler.SelectRequestHandler).Methods("PUT")

	mentorship.Handle("", middleware.RequireRole(models.RoleStudent)(
		http.HandlerFunc(mentorshipHandler.SendRequestHandler))).Methods("POST")
	mentorship.Handle("/{id}/status", middleware.RequireRole(models.RoleAlumni)(
		http.HandlerFunc(mentorshipHandler.RespondHandler))).Methods("PUT")

	// Directory routes
	directory := protected.PathPrefix("/directory").Subrouter()
	directory.HandleFunc("", directoryHandler.GetDirectoryHandler).Methods("GET")
	directory.HandleFunc("/suggest", directoryHandler.SuggestHandler).Methods("GET")
	directory.HandleFunc("/refresh", directoryHandler.RefreshHandler).Methods("POST")

	// Notification routes
	notifications := protected.PathPrefix("/notifications").Subrouter()
	notifications.HandleFunc("", notificationHandler.GetNotificationsHandler).Methods("GET")
	notifications.HandleFunc("/refresh", notificationHandler.RefreshHandler).Methods("POST")
	notifications.HandleFunc("/read-all", notificationHandler.MarkAllReadHandler).Methods("PUT")
	notifications.HandleFunc("/list", notificationHandler.SetListOpenHandler).Methods("PUT")
	notifications.HandleFunc("/detail", notificationHandler.CloseDetailHandler).Methods("DELETE")
	notifications.HandleFunc("/{id}/view", notificationHandler.ViewEventDetailHandler).Methods("POST")

	protected.HandleFunc("/session/logout", sessionHandler.LogoutHandler).Methods("POST")

	logger.Log.Info("Routes configured")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
