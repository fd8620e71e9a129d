package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/DailyPoll_Go/internal/config"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maxRetries := fs.Int("retries", 30, "number of connection attempts")
	retryInterval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadForJob()
	if err != nil {
		return err
	}

	PrintHeader("Waiting for database...")
	connString := cfg.GetDBConnString()

	for i := 0; i < *maxRetries; i++ {
		err = ping(connString)
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Fprintf(out, "Database not ready (%d/%d): %v\n", i+1, *maxRetries, err)
		time.Sleep(*retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", *maxRetries)
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
