package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// slowResponseThreshold marks a readiness check as slow
const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application readiness (-url base URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	baseURL := fs.String("url", "http://localhost:8080", "base URL of the running service")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", *baseURL))

	start := time.Now()
	if err := checkReady(context.Background(), http.DefaultClient, *baseURL); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > slowResponseThreshold {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}

	return nil
}

// checkReady calls /readyz, which answers 200 only while the store is reachable
func checkReady(ctx context.Context, client *http.Client, baseURL string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/readyz", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("readyz returned %d: %s %s", resp.StatusCode, body.Status, body.Message)
	}
	return nil
}
