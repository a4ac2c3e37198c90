package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
)

type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// Register creates the user on first sign-in. Registering an existing email is not an error.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (bool, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" {
		return false, model.ErrEmailRequired
	}

	user := &model.User{
		Email:    strings.TrimSpace(req.Email),
		Username: req.Username,
	}

	created, err := s.userRepo.CreateIfAbsent(ctx, user)
	if err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}

	if created {
		s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	} else {
		s.logger.Debug().Str("email", user.Email).Msg("user already registered")
	}

	return created, nil
}

// IsAdmin is the role lookup behind the admin gate.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	admin, err := s.userRepo.IsAdmin(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role: %w", err)
	}
	return admin, nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	res, err := s.userRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Int64("modified", res.ModifiedCount).Msg("user promoted to admin")
	return res, nil
}

func (s *userService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return res, nil
}
