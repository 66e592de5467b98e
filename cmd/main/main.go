package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"space/explorer/internal/config"
	"space/explorer/internal/container"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		log.Errorf("❌ %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("explorer", flag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to config file (default: ./config.yaml)")
	snapshot := flags.Bool("snapshot", false, "load every category once, print the results and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log.Info("Starting Space Explorer...")

	// Load configuration using viper
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer app.Close()

	if *snapshot {
		if err := app.Snapshot(ctx, stdout); err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}
		return nil
	}

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("application exited with error: %w", err)
	}

	log.Info("Application finished successfully")
	return nil
}
