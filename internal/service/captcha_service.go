package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
)

type captchaService struct {
	verifier CaptchaVerifier
	logger   zerolog.Logger
}

// NewCaptchaService creates a service relaying widget responses to verifier.
func NewCaptchaService(verifier CaptchaVerifier, logger zerolog.Logger) CaptchaService {
	return &captchaService{
		verifier: verifier,
		logger:   logger.With().Str("service", "captcha").Logger(),
	}
}

func (s *captchaService) Verify(ctx context.Context, response string) (bool, error) {
	if strings.TrimSpace(response) == "" {
		return false, model.ErrRecaptchaEmpty
	}

	ok, err := s.verifier.Verify(ctx, response)
	if err != nil {
		return false, fmt.Errorf("failed to verify recaptcha: %w", err)
	}
	return ok, nil
}
