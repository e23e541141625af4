package http

import (
	"net/http"

	"go-trainer-booking/internal/delivery/http/handler"
	"go-trainer-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	serviceHandler      *handler.ServiceHandler
	workshopHandler     *handler.WorkshopHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	paymentHandler      *handler.PaymentHandler
	planHandler         *handler.PlanHandler
	leadHandler         *handler.LeadHandler
	settingHandler      *handler.SettingHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	workshopHandler *handler.WorkshopHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	paymentHandler *handler.PaymentHandler,
	planHandler *handler.PlanHandler,
	leadHandler *handler.LeadHandler,
	settingHandler *handler.SettingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		serviceHandler:      serviceHandler,
		workshopHandler:     workshopHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		paymentHandler:      paymentHandler,
		planHandler:         planHandler,
		leadHandler:         leadHandler,
		settingHandler:      settingHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public catalog and site copy
	api.HandleFunc("/services", r.serviceHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/workshops", r.workshopHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/availability", r.availabilityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/plans", r.planHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/settings", r.settingHandler.Get).Methods(http.MethodGet)

	// Public booking flow
	api.HandleFunc("/bookings", r.bookingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/occupied", r.bookingHandler.OccupiedTimes).Methods(http.MethodGet)

	// Consulting plan funnel
	api.HandleFunc("/leads", r.leadHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments/create-preference", r.paymentHandler.CreatePlanPreference).Methods(http.MethodPost)

	// Gateway notifications; authenticated by shared token, not JWT
	api.HandleFunc("/payments/webhook", r.paymentHandler.Webhook).Methods(http.MethodPost)

	// Development helper, refused in production
	api.HandleFunc("/payments/dev/force-approve", r.paymentHandler.ForceApprove).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/bootstrap", r.authHandler.Bootstrap).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Admin panel (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/services", r.serviceHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/workshops", r.workshopHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/workshops", r.workshopHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/workshops/{id}", r.workshopHandler.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/workshops/{id}", r.workshopHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/workshops/{id}/registrations", r.workshopHandler.Registrations).Methods(http.MethodGet)

	admin.HandleFunc("/availability", r.availabilityHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/availability", r.availabilityHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/availability/{id}", r.availabilityHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/plans", r.planHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/plans", r.planHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/plans/{id}", r.planHandler.Update).Methods(http.MethodPut)

	admin.HandleFunc("/leads", r.leadHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/upcoming", r.bookingHandler.Upcoming).Methods(http.MethodGet)
	admin.HandleFunc("/settings", r.settingHandler.Update).Methods(http.MethodPut)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
