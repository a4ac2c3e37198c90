package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"cuisinecraft-hub/internal/auth"
	"cuisinecraft-hub/internal/cache"
	"cuisinecraft-hub/internal/config"
	"cuisinecraft-hub/internal/database"
	"cuisinecraft-hub/internal/handler"
	"cuisinecraft-hub/internal/repository"
	"cuisinecraft-hub/internal/router"
	"cuisinecraft-hub/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testTokenSecret = "integration-secret"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Store     *repository.Store
}

// SetupTestDB creates a PostgreSQL test container with the application schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Store:     repository.NewPostgresStore(pool, logger),
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"payments", "cart_items", "reservations", "users",
		"contact_messages", "reviews", "chef_recommendations", "menu",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// fakeGateway records the amounts it was asked to charge.
type fakeGateway struct {
	mu      sync.Mutex
	amounts []int64
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amounts = append(g.amounts, amount)
	return fmt.Sprintf("pi_%d_secret_%s", len(g.amounts), currency), nil
}

// fakeVerifier accepts exactly one widget response.
type fakeVerifier struct {
	valid string
}

func (v fakeVerifier) Verify(_ context.Context, response string) (bool, error) {
	return response == v.valid, nil
}

// TestServer bundles the HTTP handler with the collaborators tests inspect.
type TestServer struct {
	Handler http.Handler
	Tokens  *auth.TokenManager
	Gateway *fakeGateway
}

func setupTestServer(t *testing.T, testDB *TestDB) *TestServer {
	t.Helper()

	logger := zerolog.Nop()
	store := testDB.Store

	tokens := auth.NewTokenManager(testTokenSecret, time.Hour)
	gateway := &fakeGateway{}

	userService := service.NewUserService(store.Users, logger)

	handlers := router.Handlers{
		System:  handler.NewSystemHandler(store, logger),
		Menu:    handler.NewMenuHandler(service.NewMenuService(store.Menu, logger), logger),
		Content: handler.NewContentHandler(service.NewContentService(store.Reviews, store.Recommendations, store.Contacts, logger), logger),
		Cart:    handler.NewCartHandler(service.NewCartService(store.Cart, logger), logger),
		User:    handler.NewUserHandler(userService, tokens, logger),
		Payment: handler.NewPaymentHandler(service.NewPaymentService(store.Payments, gateway, "usd", logger), logger),
		Reservation: handler.NewReservationHandler(
			service.NewReservationService(store.Reservations, logger), logger),
		Stats: handler.NewStatsHandler(
			service.NewStatsService(store.Users, store.Menu, store.Payments, cache.Noop{}, logger), logger),
		Captcha: handler.NewCaptchaHandler(service.NewCaptchaService(fakeVerifier{valid: "human"}, logger), logger),
	}

	return &TestServer{
		Handler: router.New(handlers, router.Gates{Tokens: tokens, Admins: userService}, nil, logger),
		Tokens:  tokens,
		Gateway: gateway,
	}
}
