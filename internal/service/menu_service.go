package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves the whole menu.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return items, nil
}

// PurchaseDetails resolves the ids of a past purchase to menu items.
func (s *menuService) PurchaseDetails(ctx context.Context, items string) ([]model.MenuItem, error) {
	ids, err := parseItemIDs(items)
	if err != nil {
		s.logger.Debug().Str("items", items).Err(err).Msg("rejected purchase detail lookup")
		return nil, err
	}

	found, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase details: %w", err)
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("found", len(found)).
		Msg("resolved purchase details")

	return found, nil
}

// Create adds a menu item.
func (s *menuService) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	res, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().Str("menu_item_id", res.InsertedID).Str("name", item.Name).Msg("menu item added")
	return res, nil
}

// Update replaces the editable fields of a menu item.
func (s *menuService) Update(ctx context.Context, id string, item *model.MenuItem) (*model.UpdateResult, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	res, err := s.menuRepo.Update(ctx, id, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return res, nil
}

// Delete removes a menu item.
func (s *menuService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.logger.Info().Str("menu_item_id", id).Int64("deleted", res.DeletedCount).Msg("menu item deleted")
	return res, nil
}

// parseItemIDs splits a comma-separated id list and trims every element.
func parseItemIDs(items string) ([]string, error) {
	if strings.TrimSpace(items) == "" {
		return nil, model.ErrEmptyItemList
	}

	parts := strings.Split(items, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" {
			return nil, model.ErrInvalidID
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func validateMenuItem(item *model.MenuItem) error {
	if item == nil || strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Category) == "" {
		return model.ErrInvalidInput
	}
	if item.Price < 0 {
		return model.ErrInvalidPrice
	}
	return nil
}
