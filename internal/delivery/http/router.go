package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth           *handler.AuthHandler
	Doctor         *handler.DoctorHandler
	DoctorSchedule *handler.DoctorScheduleHandler
	TimeSlot       *handler.TimeSlotHandler
	Availability   *handler.AvailabilityHandler
	Booking        *handler.BookingHandler
	AdminBooking   *handler.AdminBookingHandler
	Patient        *handler.PatientHandler
	Contact        *handler.ContactHandler
	Dashboard      *handler.DashboardHandler
	Export         *handler.ExportHandler
	AuditLog       *handler.AuditLogHandler
}

type Router struct {
	router              *mux.Router
	handlers            Handlers
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		handlers:            handlers,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

// Setup registers all routes. CORS wraps the whole router so preflight
// requests are answered even when no route matches OPTIONS.
func (r *Router) Setup() http.Handler {
	h := r.handlers

	r.router.Use(r.loggingMiddleware.Handle)

	// Prometheus scrape endpoint
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/sign-up", h.Auth.SignUp).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Catalogue (public)
	api.HandleFunc("/doctors", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability", h.Availability.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", h.TimeSlot.GetActiveTimeSlots).Methods(http.MethodGet)

	// Public submissions are rate limited per client
	api.Handle("/bookings", r.rateLimitMiddleware.Limit(http.HandlerFunc(h.Booking.CreateBooking))).Methods(http.MethodPost)
	api.Handle("/contact", r.rateLimitMiddleware.Limit(http.HandlerFunc(h.Contact.CreateMessage))).Methods(http.MethodPost)

	// Signed-in patient
	me := api.PathPrefix("/bookings").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/me", h.Booking.GetMyBookings).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management
	admin.HandleFunc("/doctors", h.Doctor.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", h.Doctor.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", h.Doctor.DeleteDoctor).Methods(http.MethodDelete)

	// Schedule management
	admin.HandleFunc("/doctors/{id}/schedules", h.DoctorSchedule.GetSchedulesByDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}/schedules", h.DoctorSchedule.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{id}", h.DoctorSchedule.GetSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", h.DoctorSchedule.UpdateSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}/toggle", h.DoctorSchedule.ToggleSchedule).Methods(http.MethodPatch)
	admin.HandleFunc("/schedules/{id}", h.DoctorSchedule.DeleteSchedule).Methods(http.MethodDelete)

	// Time slot catalogue
	admin.HandleFunc("/time-slots", h.TimeSlot.GetAllTimeSlots).Methods(http.MethodGet)
	admin.HandleFunc("/time-slots", h.TimeSlot.CreateTimeSlot).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{id}/toggle", h.TimeSlot.ToggleTimeSlot).Methods(http.MethodPatch)

	// Bookings
	admin.HandleFunc("/bookings", h.AdminBooking.GetBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", h.AdminBooking.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", h.AdminBooking.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/cancelled-bookings", h.AdminBooking.GetCancelledBookings).Methods(http.MethodGet)

	// Patients
	admin.HandleFunc("/patients", h.Patient.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", h.Patient.GetPatient).Methods(http.MethodGet)

	// Contact inbox
	admin.HandleFunc("/messages", h.Contact.GetAllMessages).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id}/read", h.Contact.MarkRead).Methods(http.MethodPatch)
	admin.HandleFunc("/messages/{id}", h.Contact.DeleteMessage).Methods(http.MethodDelete)

	// Reporting
	admin.HandleFunc("/stats", h.Dashboard.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/export/{entity}", h.Export.Export).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", h.AuditLog.GetAuditLogs).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
