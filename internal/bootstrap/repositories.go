package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DailyPoll_Go/internal/cache"
	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/database"
	"github.com/osse101/DailyPoll_Go/internal/database/memory"
	"github.com/osse101/DailyPoll_Go/internal/database/postgres"
	"github.com/osse101/DailyPoll_Go/internal/handler"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// Questions is the cached decorator when the question cache is enabled.
type Repositories struct {
	Questions repository.Question
	Votes     repository.Vote
	Streaks   repository.Streak
	Profiles  repository.Profile
	Comments  repository.Comment

	// Store answers readiness checks
	Store handler.Pinger
	// Cache is nil when the question cache is disabled
	Cache *cache.QuestionCache

	closer func()
}

// Close releases the underlying store
func (r *Repositories) Close() {
	if r.closer != nil {
		r.closer()
	}
}

// CacheStats returns the cache as a stats provider, or an untyped nil when
// the cache is disabled
func (r *Repositories) CacheStats() handler.CacheStatsProvider {
	if r.Cache == nil {
		return nil
	}
	return r.Cache
}

// InitializeRepositories builds the configured store backend. The Postgres
// backend applies pending migrations first when DB_AUTO_MIGRATE is set.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	var repos *Repositories

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		store := memory.NewStore()
		repos = &Repositories{
			Questions: store,
			Votes:     store,
			Streaks:   store,
			Profiles:  store,
			Comments:  store,
			Store:     store,
		}
	case config.StoreBackendPostgres:
		connString := cfg.GetDBConnString()
		if cfg.DBAutoMigrate {
			if err := database.Migrate(ctx, connString); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplyMigrations, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}

		pool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		repos = &Repositories{
			Questions: postgres.NewQuestionRepository(pool),
			Votes:     postgres.NewVoteRepository(pool),
			Streaks:   postgres.NewStreakRepository(pool),
			Profiles:  postgres.NewProfileRepository(pool),
			Comments:  postgres.NewCommentRepository(pool),
			Store:     pool,
			closer:    pool.Close,
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnsupportedStoreBackend, cfg.StoreBackend)
	}

	if cfg.QuestionCacheSize > 0 {
		repos.Cache = cache.NewQuestionCache(repos.Questions, cache.Config{
			Size: cfg.QuestionCacheSize,
			TTL:  cfg.QuestionCacheTTL,
		})
		repos.Questions = repos.Cache
		slog.Info(LogMsgQuestionCacheEnabled, "size", cfg.QuestionCacheSize, "ttl", cfg.QuestionCacheTTL)
	}

	slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)
	return repos, nil
}
