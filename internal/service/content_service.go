package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
)

type contentService struct {
	reviews         repository.ReviewRepository
	recommendations repository.RecommendationRepository
	contacts        repository.ContactRepository
	logger          zerolog.Logger
}

// NewContentService creates a service over reviews, chef recommendations and contact messages.
func NewContentService(
	reviews repository.ReviewRepository,
	recommendations repository.RecommendationRepository,
	contacts repository.ContactRepository,
	logger zerolog.Logger,
) ContentService {
	return &contentService{
		reviews:         reviews,
		recommendations: recommendations,
		contacts:        contacts,
		logger:          logger.With().Str("service", "content").Logger(),
	}
}

func (s *contentService) Reviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

func (s *contentService) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.recommendations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chef recommendations: %w", err)
	}
	return recs, nil
}

func (s *contentService) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return msgs, nil
}

// CreateContactMessage stores a message left through the contact form.
func (s *contentService) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) (*model.InsertResult, error) {
	if msg == nil || strings.TrimSpace(msg.Message) == "" {
		return nil, model.ErrInvalidInput
	}
	if strings.TrimSpace(msg.Email) == "" {
		return nil, model.ErrEmailRequired
	}

	res, err := s.contacts.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	s.logger.Info().Str("contact_id", res.InsertedID).Msg("contact message received")
	return res, nil
}
