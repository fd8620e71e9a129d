package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/event"
)

type ReplayEventsCommand struct{}

func (c *ReplayEventsCommand) Name() string {
	return "replay-events"
}

func (c *ReplayEventsCommand) Description() string {
	return "Re-publish dead-lettered events to Kafka (-file path, -dry-run)"
}

func (c *ReplayEventsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	file := fs.String("file", "", "dead-letter file, defaults to EVENT_DEADLETTER_PATH")
	dryRun := fs.Bool("dry-run", false, "only summarize the file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadForJob()
	if err != nil {
		return err
	}
	path := *file
	if path == "" {
		path = cfg.EventDeadLetterPath
	}

	entries, err := event.ReadDeadLetters(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		PrintInfo("No dead-lettered events in %s", path)
		return nil
	}

	PrintHeader(fmt.Sprintf("%d dead-lettered events in %s", len(entries), path))
	for _, line := range summarizeEntries(entries) {
		fmt.Fprintln(out, "  "+line)
	}
	if *dryRun {
		return nil
	}

	if !cfg.EventsEnabled() {
		return fmt.Errorf("KAFKA_BROKERS is not set")
	}
	sink := event.NewKafkaSink(event.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	defer sink.Close()

	sent, failed := replayEntries(context.Background(), entries, sink)
	if failed > 0 {
		return fmt.Errorf("%d of %d events could not be published", failed, len(entries))
	}
	PrintSuccess("Replayed %d events to %s", sent, cfg.KafkaTopic)
	PrintWarning("The file was left in place; remove it once consumers have caught up")
	return nil
}

// replayEntries publishes entries in file order and counts the outcomes
func replayEntries(ctx context.Context, entries []event.DeadLetterEntry, pub event.Publisher) (sent, failed int) {
	for _, entry := range entries {
		if err := pub.Publish(ctx, entry.Event); err != nil {
			PrintError("%s: %v", entry.Event.Type, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

// summarizeEntries counts entries per event type, sorted by type
func summarizeEntries(entries []event.DeadLetterEntry) []string {
	counts := make(map[event.Type]int)
	for _, e := range entries {
		counts[e.Event.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	lines := make([]string, 0, len(types))
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("%-20s %d", t, counts[event.Type(t)]))
	}
	return lines
}
