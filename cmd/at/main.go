package main

import (
	"context"
	"fmt"
	"os"

	"assignment-tracker/internal/cli"
	"assignment-tracker/internal/config"
	"assignment-tracker/internal/logging"
	"assignment-tracker/internal/notify"
	"assignment-tracker/internal/store"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.SetVerbose(cfg.Application.Verbose)

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	var notifier notify.Notifier = notify.NewNopNotifier()
	if cfg.Notifications.Enabled {
		notifier = notify.NewDesktopNotifier(cfg.Notifications.AppName)
	}
	scheduler := notify.NewSchedulerWithLeadTime(notifier, cfg.Notifications.LeadTime)

	s := store.New(repo, scheduler)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := s.RefreshFolders(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading folders: %v\n", err)
		os.Exit(1)
	}
	if err := s.RefreshTasks(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	// The system forgets one-shot triggers between runs; rebuild them
	// from persisted state before handling the command.
	s.RescheduleAll()

	root := cli.NewRootCommand(s, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
