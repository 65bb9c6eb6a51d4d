package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
)

// testDBConfig holds the test database configuration
type testDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// getTestDBConfig returns the test database configuration from environment
// variables or defaults to the db service from docker-compose.yml
func getTestDBConfig() testDBConfig {
	return testDBConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5432"),
		User:     getEnv("TEST_DB_USER", "senda"),
		Password: getEnv("TEST_DB_PASSWORD", "senda"),
		DBName:   getEnv("TEST_DB_NAME", "senda_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestDB connects to the test database or skips the test when it is
// not reachable.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := getTestDBConfig()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Test database not available: %v", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("Test database not reachable: %v", err)
	}

	return NewDBForTest(db, zap.NewNop())
}

func teardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Errorf("Failed to close test database: %v", err)
	}
}

// createTestUser inserts a user with a unique email and registers cleanup.
func createTestUser(t *testing.T, db *DB, role string) *domain.User {
	t.Helper()

	repo := NewUserRepository(db)
	user, err := repo.Create(context.Background(), &domain.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user-%d@test.local", time.Now().UnixNano()),
		Password: "hashed-password",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	t.Cleanup(func() {
		db.ExecContext(context.Background(), "DELETE FROM users WHERE id = $1", user.ID)
	})

	return user
}

// createTestRoute inserts a route with two waypoints and registers cleanup.
func createTestRoute(t *testing.T, db *DB, title, slug string) *domain.Route {
	t.Helper()

	repo := NewRouteRepository(db)
	distance := 12.5
	ascent := 430
	elevation := 950

	route, err := repo.CreateWithWaypoints(context.Background(),
		&domain.Route{
			Title:      title,
			Slug:       slug,
			Difficulty: domain.DifficultyModerate,
			DistanceKm: &distance,
			AscentM:    &ascent,
			Source:     domain.SourceORS,
			StartLat:   40.4168,
			StartLng:   -3.7038,
			EndLat:     40.5,
			EndLng:     -3.68,
		},
		[]domain.Waypoint{
			{Position: 0, Lat: 40.4168, Lng: -3.7038, Elevation: &elevation},
			{Position: 1, Lat: 40.5, Lng: -3.68},
		},
	)
	if err != nil {
		t.Fatalf("Failed to create test route: %v", err)
	}

	t.Cleanup(func() {
		db.ExecContext(context.Background(), "DELETE FROM routes WHERE id = $1", route.ID)
	})

	return route
}
