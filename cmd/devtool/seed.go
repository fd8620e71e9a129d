package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/DailyPoll_Go/internal/bootstrap"
	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/question"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Import questions from a JSON seed file (-file path)"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	file := fs.String("file", "", "path to the question seed file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	cfg, err := config.LoadForJob()
	if err != nil {
		return err
	}
	if cfg.StoreBackend == config.StoreBackendMemory {
		PrintWarning("STORE_BACKEND=memory, the import only validates the file")
	}

	ctx := context.Background()
	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	PrintInfo("Importing %s...", *file)
	svc := question.NewService(repos.Questions, event.NopPublisher{}, cfg.Location)
	res, err := svc.ImportFile(ctx, *file)
	if err != nil {
		return err
	}

	PrintSuccess("Seed complete: %d created, %d skipped", res.Created, res.Skipped)
	return nil
}
