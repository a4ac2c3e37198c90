package service

import (
	"context"

	"cuisinecraft-hub/internal/model"
)

// MenuService defines operations for the menu and purchase-detail lookups.
type MenuService interface {
	// List retrieves the whole menu.
	List(ctx context.Context) ([]model.MenuItem, error)

	// PurchaseDetails resolves a comma-separated list of menu item ids. Unknown ids are omitted.
	PurchaseDetails(ctx context.Context, items string) ([]model.MenuItem, error)

	Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)
	Update(ctx context.Context, id string, item *model.MenuItem) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ContentService serves the read-mostly site content.
type ContentService interface {
	Reviews(ctx context.Context) ([]model.Review, error)
	Recommendations(ctx context.Context) ([]model.Recommendation, error)
	ContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) (*model.InsertResult, error)
}

// CartService defines operations on customer carts.
type CartService interface {
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error)
	Remove(ctx context.Context, id string) (*model.DeleteResult, error)
}

// UserService defines user registration and role management.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)

	// Register creates the user unless the email exists and reports whether it did.
	Register(ctx context.Context, req *model.RegisterRequest) (bool, error)

	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// PaymentService defines payment intents, checkout and payment history.
type PaymentService interface {
	// CreateIntent opens a card payment intent for price and returns its client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)

	// Checkout records the payment and clears the payer's cart.
	Checkout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error)

	History(ctx context.Context, email string) ([]model.Payment, error)
}

// ReservationService defines table booking operations.
type ReservationService interface {
	List(ctx context.Context) ([]model.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]model.Reservation, error)
	Create(ctx context.Context, r *model.Reservation) (*model.InsertResult, error)
	Confirm(ctx context.Context, id string) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// StatsService computes the dashboard reports.
type StatsService interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	SoldStats(ctx context.Context) ([]model.CategoryStat, error)
	UserSoldStats(ctx context.Context, email string) ([]model.CategoryStat, error)
}

// CaptchaService relays reCAPTCHA widget responses.
type CaptchaService interface {
	Verify(ctx context.Context, response string) (bool, error)
}

// PaymentGateway creates payment intents with the card processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// CaptchaVerifier checks a reCAPTCHA response upstream.
type CaptchaVerifier interface {
	Verify(ctx context.Context, response string) (bool, error)
}
