package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
)

type cartService struct {
	cartRepo repository.CartRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// List returns the cart of email. An empty email is refused rather than listing every cart.
func (s *cartService) List(ctx context.Context, email string) ([]model.CartItem, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.ErrEmailRequired
	}

	items, err := s.cartRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return items, nil
}

// Add stores a cart entry under the trimmed email, the same key List and checkout use.
func (s *cartService) Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	if item == nil {
		return nil, model.ErrInvalidInput
	}
	item.Email = strings.TrimSpace(item.Email)
	if item.Email == "" {
		return nil, model.ErrEmailRequired
	}

	res, err := s.cartRepo.Add(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().Str("email", item.Email).Str("menu_item_id", item.MenuItemID).Msg("item added to cart")
	return res, nil
}

func (s *cartService) Remove(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return res, nil
}
