package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/discord"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

var watchableEvents = []string{
	sse.EventTypeLevelUp,
	sse.EventTypeCropHarvested,
	sse.EventTypeAnimalCollected,
	sse.EventTypeRegionExplored,
}

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Tail the API event stream (-types a,b to filter)"
}

func (c *WatchEventsCommand) Run(args []string) error {
	fs := flag.NewFlagSet("watch-events", flag.ContinueOnError)
	types := fs.String("types", "", "Comma-separated event types, empty for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	selected := watchableEvents
	if *types != "" {
		selected = nil
		for _, t := range strings.Split(*types, ",") {
			if t = strings.TrimSpace(t); t != "" {
				selected = append(selected, t)
			}
		}
	}

	baseURL := getEnv("API_URL", "http://localhost:8080")
	client := discord.NewSSEClient(baseURL, os.Getenv("API_KEY"), selected)
	for _, t := range selected {
		client.OnEvent(t, func(e discord.SSEEvent) error {
			at := time.Unix(e.Timestamp, 0).Format(time.TimeOnly)
			PrintInfo("%s %s %s", at, e.Type, string(e.Payload))
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	PrintHeader("Watching " + baseURL + " (Ctrl+C to stop)")
	client.Start(ctx)
	<-ctx.Done()
	client.Stop()
	return nil
}
