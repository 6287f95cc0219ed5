package http

import (
	"net/http"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/handler"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                   *mux.Router
	recurrencePatternHandler *handler.RecurrencePatternHandler
	timeSlotHandler          *handler.TimeSlotHandler
	auditLogHandler          *handler.AuditLogHandler
	authMiddleware           *middleware.AuthMiddleware
	corsMiddleware           *middleware.CORSMiddleware
}

func NewRouter(
	recurrencePatternHandler *handler.RecurrencePatternHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                   mux.NewRouter(),
		recurrencePatternHandler: recurrencePatternHandler,
		timeSlotHandler:          timeSlotHandler,
		auditLogHandler:          auditLogHandler,
		authMiddleware:           authMiddleware,
		corsMiddleware:           corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Reads (any authenticated user)
	read := api.NewRoute().Subrouter()
	read.Use(r.authMiddleware.Authenticate)
	read.HandleFunc("/recurrence-patterns/{id}", r.recurrencePatternHandler.GetPattern).Methods(http.MethodGet)
	read.HandleFunc("/coaches/{coachId}/recurrence-patterns", r.recurrencePatternHandler.GetPatternsByCoach).Methods(http.MethodGet)
	read.HandleFunc("/time-slots/{id}", r.timeSlotHandler.GetTimeSlot).Methods(http.MethodGet)
	read.HandleFunc("/coaches/{coachId}/time-slots", r.timeSlotHandler.GetTimeSlotsByCoach).Methods(http.MethodGet)

	// Availability changes (admin or coach)
	write := api.NewRoute().Subrouter()
	write.Use(r.authMiddleware.Authenticate)
	write.Use(middleware.RequireAdminOrCoach)
	write.HandleFunc("/recurrence-patterns", r.recurrencePatternHandler.CreatePattern).Methods(http.MethodPost)
	write.HandleFunc("/recurrence-patterns/{id}/generate", r.recurrencePatternHandler.GenerateSlots).Methods(http.MethodPost)
	write.HandleFunc("/time-slots/{id}/remove-segment", r.timeSlotHandler.RemoveSegment).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
