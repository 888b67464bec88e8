package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/obsidianstack/empviz/internal/config"
	"github.com/obsidianstack/empviz/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to config file; built-in defaults when empty")
	watch := flag.Bool("watch", false, "re-run whenever the config file changes (requires -config)")
	flag.Parse()

	// stdout carries the report lines; logs go to stderr.
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))
	slog.SetDefault(logger)

	slog.Debug("empviz starting", "config", *configPath, "watch", *watch)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}
	level.Set(cfg.SlogLevel())
	slog.Debug("config loaded",
		"seed", cfg.Seed,
		"focus_department", cfg.FocusDepartment,
		"csv", cfg.Output.CSV,
		"html", cfg.Output.HTML,
	)

	if *watch && *configPath == "" {
		slog.Error("-watch requires -config")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := pipeline.Run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("report generation failed", "err", err)
		cancel()
		os.Exit(1)
	}

	if !*watch {
		return
	}

	// Runs happen on the watcher goroutine, one at a time.
	err := config.Watch(ctx, *configPath, func(updated *config.Config) {
		level.Set(updated.SlogLevel())
		if _, err := pipeline.Run(ctx, updated, os.Stdout); err != nil {
			slog.Error("report regeneration failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("config watcher stopped", "err", err)
		cancel()
		os.Exit(1)
	}
	slog.Info("empviz shutting down")
}
