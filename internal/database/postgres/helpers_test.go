package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/DailyPoll_Go/internal/database"
	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// setupTestDB starts a throwaway Postgres, applies the embedded migrations and
// returns a pool. The test is skipped under -short or when Docker is unavailable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *tcpostgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("testdb"),
			tcpostgres.WithUsername("testuser"),
			tcpostgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(ctx, connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func createQuestion(t *testing.T, repo *QuestionRepository, date domain.Date) *domain.Question {
	t.Helper()
	q := &domain.Question{
		Date:    date,
		Text:    "Cats or dogs?",
		OptionA: "Cats",
		OptionB: "Dogs",
	}
	if err := repo.CreateQuestion(context.Background(), q); err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return q
}
