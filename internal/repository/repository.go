package repository

import (
	"context"

	"cuisinecraft-hub/internal/model"
)

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// List retrieves the whole menu.
	List(ctx context.Context) ([]model.MenuItem, error)

	// GetByIDs retrieves the menu items matching ids. Unknown ids are omitted;
	// a malformed id fails the whole lookup with model.ErrInvalidID.
	GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)

	// Create inserts a new menu item.
	Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)

	// Update replaces name, recipe, image, category and price of an item.
	Update(ctx context.Context, id string, item *model.MenuItem) (*model.UpdateResult, error)

	// Delete removes a menu item. Historical payments keep referencing it.
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)

	// Count returns an approximate number of menu items.
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository defines data access for customer reviews.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) (*model.InsertResult, error)
}

// RecommendationRepository defines data access for chef recommendations.
type RecommendationRepository interface {
	List(ctx context.Context) ([]model.Recommendation, error)
	Create(ctx context.Context, rec *model.Recommendation) (*model.InsertResult, error)
}

// ContactRepository defines data access for contact form messages.
type ContactRepository interface {
	List(ctx context.Context) ([]model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) (*model.InsertResult, error)
}

// CartRepository defines data access for cart entries.
type CartRepository interface {
	// ListByEmail retrieves the cart of one customer.
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)

	// Add inserts a cart entry.
	Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error)

	// Delete removes a single cart entry.
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// UserRepository defines data access for users and roles.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)

	// GetByEmail returns nil, nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// IsAdmin reports whether a user with the email holds the admin role.
	IsAdmin(ctx context.Context, email string) (bool, error)

	// CreateIfAbsent inserts the user unless the email is already registered.
	// It reports whether a record was created.
	CreateIfAbsent(ctx context.Context, user *model.User) (bool, error)

	// PromoteToAdmin sets the admin role on a user.
	PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error)

	Delete(ctx context.Context, id string) (*model.DeleteResult, error)

	// Count returns an approximate number of users.
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines data access for payments and the reports derived from them.
type PaymentRepository interface {
	// ListByEmail retrieves the payment history of one customer.
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)

	// Checkout records the payment and removes every cart entry of the payer
	// in a single transaction.
	Checkout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error)

	// Count returns an approximate number of payments.
	Count(ctx context.Context) (int64, error)

	// TotalRevenue returns the exact sum of all payment prices, 0 when there are none.
	TotalRevenue(ctx context.Context) (float64, error)

	// SoldStats unwinds the menu item ids of every payment (restricted to email when
	// it is not empty), joins them to the menu and groups the matches by category.
	// Ids that do not resolve to a menu item are dropped.
	SoldStats(ctx context.Context, email string) ([]model.CategoryStat, error)
}

// ReservationRepository defines data access for table reservations.
type ReservationRepository interface {
	List(ctx context.Context) ([]model.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]model.Reservation, error)
	Create(ctx context.Context, r *model.Reservation) (*model.InsertResult, error)

	// Confirm moves a reservation to confirmed. Confirming an already confirmed
	// reservation matches it but modifies nothing.
	Confirm(ctx context.Context, id string) (*model.UpdateResult, error)

	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// Store bundles the repositories of one storage backend behind a single handle.
type Store struct {
	Menu            MenuRepository
	Reviews         ReviewRepository
	Recommendations RecommendationRepository
	Contacts        ContactRepository
	Cart            CartRepository
	Users           UserRepository
	Payments        PaymentRepository
	Reservations    ReservationRepository

	ping func(ctx context.Context) error
}

// Ping checks that the backing datastore is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
