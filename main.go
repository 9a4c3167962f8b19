package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-savanna/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML config (empty = defaults)")
	headless := flag.Bool("headless", false, "Print frames as plain text instead of driving the terminal")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config value or time-based)")
	maxTicks := flag.Int("max-ticks", -1, "Stop after N ticks (0 = unlimited, -1 = config value)")
	outputDir := flag.String("output-dir", "", "Directory for ticks.csv")
	logFile := flag.String("log-file", "", "Write JSON logs to this file")
	debug := flag.Bool("debug", false, "Log every tick")
	flag.Parse()

	if err := run(*configPath, *headless, *seed, *maxTicks, *outputDir, *logFile, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "savanna: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool, seed int64, maxTicks int, outputDir, logFile string, debug bool) error {
	logger, closeLog, err := newLogger(headless, logFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	// Load configuration - fallback to defaults without a file
	config := utils.DefaultConfig()
	if configPath != "" {
		if config, err = utils.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		config.Seed = seed
	}
	if maxTicks >= 0 {
		config.MaxTicks = maxTicks
	}

	savanna, stats, recorder, err := initializeGame(config, outputDir)
	if err != nil {
		return err
	}
	defer recorder.Close()

	ui, err := initializeFrontend(headless, os.Stdout)
	if err != nil {
		return err
	}
	displayGameInfo(config, savanna, headless)

	// Handle Ctrl+C gracefully
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		defer ui.close()
		return savanna.Run(gctx, ui.renderer, ui.input, newObserver(stats, recorder))
	})
	if ui.keyboard != nil {
		g.Go(func() error {
			return ui.keyboard.Pump(gctx)
		})
	}

	err = g.Wait()
	displayFinalStats(os.Stdout, stats)
	slog.Info("savanna stopped", "ticks", stats.TotalTicks, "error", err)
	return err
}
