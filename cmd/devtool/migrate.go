package main

import (
	"context"
	"fmt"

	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	cfg, err := config.LoadForJob()
	if err != nil {
		return err
	}
	if cfg.StoreBackend != config.StoreBackendPostgres {
		return fmt.Errorf("migrations need STORE_BACKEND=%s, got %s", config.StoreBackendPostgres, cfg.StoreBackend)
	}

	connString := cfg.GetDBConnString()
	PrintInfo("Connecting to database: %s", redactPassword(connString))

	m, err := database.NewMigrator(connString)
	if err != nil {
		return err
	}
	defer m.Close()

	ctx := context.Background()
	switch args[0] {
	case "up":
		if err := m.Up(ctx); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "  %05d  %-8s %s\n", s.Version, state, s.Path)
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
	return nil
}
