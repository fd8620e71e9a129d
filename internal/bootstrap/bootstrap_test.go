package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/domain"
)

func memoryConfig(cacheSize int) *config.Config {
	return &config.Config{
		StoreBackend:      config.StoreBackendMemory,
		QuestionCacheSize: cacheSize,
		QuestionCacheTTL:  time.Minute,
		Location:          time.UTC,
	}
}

func TestInitializeRepositories_Memory(t *testing.T) {
	repos, err := InitializeRepositories(context.Background(), memoryConfig(0))
	require.NoError(t, err)
	defer repos.Close()

	assert.Nil(t, repos.Cache)
	assert.Nil(t, repos.CacheStats())
	assert.NoError(t, repos.Store.Ping(context.Background()))
}

func TestInitializeRepositories_CacheWrapsQuestions(t *testing.T) {
	ctx := context.Background()
	repos, err := InitializeRepositories(ctx, memoryConfig(8))
	require.NoError(t, err)
	defer repos.Close()

	require.NotNil(t, repos.Cache)
	require.NotNil(t, repos.CacheStats())

	date := domain.NewDate(2024, time.March, 1)
	require.NoError(t, repos.Questions.CreateQuestion(ctx, &domain.Question{
		Date:    date,
		Text:    "Cats or dogs?",
		OptionA: "Cats",
		OptionB: "Dogs",
	}))

	for i := 0; i < 2; i++ {
		q, err := repos.Questions.GetQuestionByDate(ctx, date)
		require.NoError(t, err)
		require.NotNil(t, q)
	}

	stats := repos.Cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestInitializeRepositories_UnknownBackend(t *testing.T) {
	cfg := memoryConfig(0)
	cfg.StoreBackend = "sqlite"

	_, err := InitializeRepositories(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestInitializeEventSystem_DisabledWithoutBrokers(t *testing.T) {
	es, err := InitializeEventSystem(&config.Config{})
	require.NoError(t, err)

	assert.NotNil(t, es.Bus)
	assert.Nil(t, es.Publisher)
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-03-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2024-03-01_00-00-00"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestGracefulShutdown_ToleratesMissingComponents(t *testing.T) {
	repos, err := InitializeRepositories(context.Background(), memoryConfig(0))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Repositories: repos})
	})
}

func TestInitializeServices_WiresEveryService(t *testing.T) {
	cfg := memoryConfig(0)
	repos, err := InitializeRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer repos.Close()

	es, err := InitializeEventSystem(cfg)
	require.NoError(t, err)

	svc := InitializeServices(cfg, repos, es.Bus)

	assert.NotNil(t, svc.Questions)
	assert.NotNil(t, svc.Voting)
	assert.NotNil(t, svc.Scoring)
	assert.NotNil(t, svc.Leaderboard)
	assert.NotNil(t, svc.Results)
	assert.NotNil(t, svc.Profiles)
	assert.NotNil(t, svc.Comments)
}
