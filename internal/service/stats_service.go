package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/cache"
	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
	counts   cache.CountCache
	logger   zerolog.Logger
}

// NewStatsService creates the reporting service. counts may be cache.Noop{}.
func NewStatsService(
	users repository.UserRepository,
	menu repository.MenuRepository,
	payments repository.PaymentRepository,
	counts cache.CountCache,
	logger zerolog.Logger,
) StatsService {
	return &statsService{
		users:    users,
		menu:     menu,
		payments: payments,
		counts:   counts,
		logger:   logger.With().Str("service", "stats").Logger(),
	}
}

// AdminStats runs the counts and the revenue sum concurrently. Any failure fails the
// whole report.
func (s *statsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var (
		counts  *model.EntityCounts
		revenue float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := s.entityCounts(gctx)
		counts = c
		return err
	})

	g.Go(func() error {
		r, err := s.payments.TotalRevenue(gctx)
		if err != nil {
			return fmt.Errorf("failed to sum revenue: %w", err)
		}
		revenue = r
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to build admin stats")
		return nil, err
	}

	return &model.AdminStats{
		Users:     counts.Users,
		MenuItems: counts.MenuItems,
		Orders:    counts.Orders,
		Revenue:   revenue,
	}, nil
}

func (s *statsService) SoldStats(ctx context.Context) ([]model.CategoryStat, error) {
	stats, err := s.payments.SoldStats(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get sold stats: %w", err)
	}
	return stats, nil
}

// UserSoldStats is SoldStats restricted to the payments of email.
func (s *statsService) UserSoldStats(ctx context.Context, email string) ([]model.CategoryStat, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.ErrEmailRequired
	}

	stats, err := s.payments.SoldStats(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get sold stats: %w", err)
	}
	return stats, nil
}

// entityCounts serves counts from the cache when possible. Cache failures only cost a
// recount.
func (s *statsService) entityCounts(ctx context.Context) (*model.EntityCounts, error) {
	cached, err := s.counts.GetCounts(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("count cache unavailable")
	} else if cached != nil {
		return cached, nil
	}

	var c model.EntityCounts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.users.Count(gctx)
		c.Users = n
		return err
	})
	g.Go(func() error {
		n, err := s.menu.Count(gctx)
		c.MenuItems = n
		return err
	})
	g.Go(func() error {
		n, err := s.payments.Count(gctx)
		c.Orders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	if err := s.counts.SetCounts(ctx, &c); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache counts")
	}

	return &c, nil
}
