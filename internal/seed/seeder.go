package seed

import (
	"context"
	"fmt"

	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Summary counts the records written per collection.
type Summary struct {
	Menu            int
	Reviews         int
	Recommendations int
	ContactMessages int
}

// Seeder writes datasets through the repositories of a store.
type Seeder struct {
	store  *repository.Store
	logger zerolog.Logger
}

// NewSeeder creates a seeder for store.
func NewSeeder(store *repository.Store, logger zerolog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed inserts every record of ds. Collections are written concurrently; the first
// failure cancels the rest and is returned.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) (Summary, error) {
	var sum Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for i := range ds.Menu {
			if _, err := s.store.Menu.Create(gctx, &ds.Menu[i]); err != nil {
				return fmt.Errorf("failed to seed menu item %q: %w", ds.Menu[i].Name, err)
			}
			sum.Menu++
		}
		return nil
	})

	g.Go(func() error {
		for i := range ds.Reviews {
			if _, err := s.store.Reviews.Create(gctx, &ds.Reviews[i]); err != nil {
				return fmt.Errorf("failed to seed review: %w", err)
			}
			sum.Reviews++
		}
		return nil
	})

	g.Go(func() error {
		for i := range ds.Recommendations {
			if _, err := s.store.Recommendations.Create(gctx, &ds.Recommendations[i]); err != nil {
				return fmt.Errorf("failed to seed chef recommendation %q: %w", ds.Recommendations[i].Name, err)
			}
			sum.Recommendations++
		}
		return nil
	})

	g.Go(func() error {
		for i := range ds.ContactMessages {
			if _, err := s.store.Contacts.Create(gctx, &ds.ContactMessages[i]); err != nil {
				return fmt.Errorf("failed to seed contact message: %w", err)
			}
			sum.ContactMessages++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("seeding failed")
		return sum, err
	}

	s.logger.Info().
		Int("menu", sum.Menu).
		Int("reviews", sum.Reviews).
		Int("chef_recommendations", sum.Recommendations).
		Int("contact_messages", sum.ContactMessages).
		Msg("dataset seeded")

	return sum, nil
}
