// Package cache keeps the dashboard entity counts between admin-stats requests.
package cache

import (
	"context"

	"cuisinecraft-hub/internal/model"
)

// CountCache stores the approximate entity counts shown on the admin dashboard.
// Revenue is never cached.
type CountCache interface {
	// GetCounts returns nil, nil on a miss.
	GetCounts(ctx context.Context) (*model.EntityCounts, error)
	SetCounts(ctx context.Context, counts *model.EntityCounts) error
}

// Noop is used when no cache is configured; every lookup misses.
type Noop struct{}

func (Noop) GetCounts(context.Context) (*model.EntityCounts, error) { return nil, nil }

func (Noop) SetCounts(context.Context, *model.EntityCounts) error { return nil }
