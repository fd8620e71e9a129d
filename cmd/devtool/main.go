package main

import (
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(groupDatabase, &MigrateCommand{})
	r.Register(groupDatabase, &WaitForDBCommand{})
	r.Register(groupData, &SeedCommand{})
	r.Register(groupData, &ReplayEventsCommand{})
	r.Register(groupOps, &HealthCheckCommand{})
	r.Alias("health", "health-check")
	r.Alias("replay", "replay-events")
	return r
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()

	if len(os.Args) < 2 || os.Args[1] == "help" || os.Args[1] == "-h" {
		registry.WriteHelp(out)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		if s := registry.Suggest(os.Args[1]); s != "" {
			PrintInfo("Did you mean %q?", s)
		}
		registry.WriteHelp(out)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
