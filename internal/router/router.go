package router

import (
	"encoding/json"
	"net/http"

	"cuisinecraft-hub/internal/handler"
	"cuisinecraft-hub/internal/middleware"
	"cuisinecraft-hub/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the route table dispatches to.
type Handlers struct {
	System      *handler.SystemHandler
	Menu        *handler.MenuHandler
	Content     *handler.ContentHandler
	Cart        *handler.CartHandler
	User        *handler.UserHandler
	Payment     *handler.PaymentHandler
	Reservation *handler.ReservationHandler
	Stats       *handler.StatsHandler
	Captcha     *handler.CaptchaHandler
}

// Gates are the collaborators behind the token and admin checks.
type Gates struct {
	Tokens middleware.TokenVerifier
	Admins middleware.AdminChecker
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, gates Gates, allowedOrigins []string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> SecurityHeaders -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, req, http.StatusNotFound, model.ErrCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, req, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed")
	})

	requireToken := middleware.RequireToken(gates.Tokens, logger)
	requireAdmin := middleware.RequireAdmin(gates.Admins, logger)

	r.Get("/", h.System.Root)
	r.Get("/health", h.System.Health)

	// Menu and purchase details
	r.Get("/menu", h.Menu.List)
	r.Get("/paymentHistoryPurchaseDetails", h.Menu.PurchaseDetails)
	r.Patch("/updateItem/{id}", h.Menu.Update)

	// Site content
	r.Get("/review", h.Content.Reviews)
	r.Get("/chef_recommendation", h.Content.Recommendations)
	r.Get("/contactUs", h.Content.ContactMessages)
	r.Post("/contactUs", h.Content.CreateContactMessage)

	// Cart
	r.Get("/cartList", h.Cart.List)
	r.Post("/addToCart", h.Cart.Add)
	r.Delete("/deleteCartItem/{id}", h.Cart.Remove)

	// Users and tokens
	r.Post("/jwt", h.User.IssueToken)
	r.Post("/users", h.User.Register)
	r.Patch("/users/admin/{id}", h.User.Promote)
	r.Delete("/deleteUser/{id}", h.User.Delete)

	// Payments
	r.Post("/create-payment-intent", h.Payment.CreateIntent)
	r.Post("/payments", h.Payment.Checkout)
	r.Get("/paymentHistory/{email}", h.Payment.History)

	// Reservations
	r.Get("/allBookings", h.Reservation.List)
	r.Get("/myBookings", h.Reservation.ListByEmail)
	r.Post("/reservation", h.Reservation.Create)
	r.Patch("/confirmReservation", h.Reservation.Confirm)
	r.Delete("/deleteReservation", h.Reservation.Delete)

	// Reports
	r.Get("/admin-stats", h.Stats.AdminStats)
	r.Get("/sold-stats", h.Stats.SoldStats)
	r.Get("/userPaymentHistory", h.Stats.UserSoldStats)

	r.Post("/verifyRecaptcha", h.Captcha.Verify)

	// Token + admin gated
	r.Group(func(r chi.Router) {
		r.Use(requireToken, requireAdmin)

		r.Get("/users", h.User.List)
		r.Get("/user/admin/{email}", h.User.AdminStatus)
		r.Post("/addItem", h.Menu.Create)
		r.Delete("/deleteItem/{id}", h.Menu.Delete)
	})

	return r
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.RequestIDFromContext(r.Context()),
	})
}
