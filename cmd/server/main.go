package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"eventgate/internal/checkout"
	"eventgate/internal/config"
	"eventgate/internal/handlers"
	"eventgate/internal/middleware"
	"eventgate/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))

	// Configure session options
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	backendTimeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second

	// Initialize backend API services
	eventService := services.NewEventService(cfg.Backend.BaseURL, backendTimeout)
	registrationService := services.NewRegistrationService(cfg.Backend.BaseURL, backendTimeout)
	paymentService := services.NewPaymentService(cfg.Backend.BaseURL, backendTimeout)
	paymentService.SetReturnURLs(cfg.Payment.SuccessURL, cfg.Payment.CancelledURL)
	contactService := services.NewContactService(cfg.Backend.BaseURL, backendTimeout)

	// The orchestrator owns checkout sequencing; handlers only translate
	orchestrator := checkout.NewOrchestrator(registrationService, paymentService)

	// Initialize session-backed cart persistence
	cartStore := handlers.NewSessionCartStore(sessionStore)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler(eventService)
	cartHandler := handlers.NewCartHandler(eventService, cartStore)
	checkoutHandler := handlers.NewCheckoutHandler(orchestrator, cartStore)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cartStore)
	contactHandler := handlers.NewContactHandler(contactService)

	identityMiddleware := middleware.NewIdentityMiddleware(sessionStore)

	// Initialize router
	r := chi.NewRouter()

	// Basic middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(identityMiddleware.LoadUser)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/events", http.StatusTemporaryRedirect)
	})
	r.Get("/events", eventsHandler.EventsListPage)
	r.Get("/events/{id}", eventsHandler.EventDetailsPage)
	r.Get("/contact", contactHandler.ContactPage)
	r.Post("/contact", contactHandler.SubmitContact)

	// Payment return routes stay public: the provider redirects the browser
	// here and the session cookie may or may not still carry a user
	r.Get("/payment/success", paymentHandler.PaymentSuccess)
	r.Get("/payment/cancelled", paymentHandler.PaymentCancelled)

	// Cart and checkout require a signed-in user
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/cart", cartHandler.ViewCart)
		r.Post("/cart/add", cartHandler.AddToCart)
		r.Post("/cart/increase", cartHandler.IncreaseItem)
		r.Post("/cart/decrease", cartHandler.DecreaseItem)
		r.Post("/cart/remove", cartHandler.RemoveItem)
		r.Post("/cart/clear", cartHandler.ClearCart)

		r.Get("/checkout", checkoutHandler.CheckoutPage)
		r.Post("/checkout", checkoutHandler.ProcessCheckout)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s (backend API: %s)", addr, cfg.Backend.BaseURL)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
