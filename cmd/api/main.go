package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuisinecraft-hub/internal/auth"
	"cuisinecraft-hub/internal/cache"
	"cuisinecraft-hub/internal/config"
	"cuisinecraft-hub/internal/database"
	"cuisinecraft-hub/internal/gateway"
	"cuisinecraft-hub/internal/handler"
	"cuisinecraft-hub/internal/repository"
	"cuisinecraft-hub/internal/router"
	"cuisinecraft-hub/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "api")
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting cuisinecraft-hub API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	counts, closeCache, err := newCountCache(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	// Outbound collaborators
	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	payments := gateway.NewStripeGateway(cfg.Stripe.SecretKey, logger)
	recaptcha := gateway.NewRecaptchaVerifier(cfg.Recaptcha.VerifyURL, cfg.Recaptcha.Secret, cfg.Recaptcha.Timeout, logger)

	// Services
	menuService := service.NewMenuService(store.Menu, logger)
	contentService := service.NewContentService(store.Reviews, store.Recommendations, store.Contacts, logger)
	cartService := service.NewCartService(store.Cart, logger)
	userService := service.NewUserService(store.Users, logger)
	paymentService := service.NewPaymentService(store.Payments, payments, cfg.Stripe.Currency, logger)
	reservationService := service.NewReservationService(store.Reservations, logger)
	statsService := service.NewStatsService(store.Users, store.Menu, store.Payments, counts, logger)
	captchaService := service.NewCaptchaService(recaptcha, logger)

	handlers := router.Handlers{
		System:      handler.NewSystemHandler(store, logger),
		Menu:        handler.NewMenuHandler(menuService, logger),
		Content:     handler.NewContentHandler(contentService, logger),
		Cart:        handler.NewCartHandler(cartService, logger),
		User:        handler.NewUserHandler(userService, tokens, logger),
		Payment:     handler.NewPaymentHandler(paymentService, logger),
		Reservation: handler.NewReservationHandler(reservationService, logger),
		Stats:       handler.NewStatsHandler(statsService, logger),
		Captcha:     handler.NewCaptchaHandler(captchaService, logger),
	}

	mux := router.New(handlers, router.Gates{Tokens: tokens, Admins: userService}, cfg.CORS.AllowedOrigins, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCountCache returns the redis-backed count cache, or a no-op cache when redis is disabled.
func newCountCache(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (cache.CountCache, func(), error) {
	if !cfg.Enabled {
		logger.Info().Msg("count cache disabled, admin stats will count on every request")
		return cache.Noop{}, func() {}, nil
	}

	client, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise count cache: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
	return cache.NewRedisCountCache(client, cfg.StatsTTL, logger), closeFn, nil
}
