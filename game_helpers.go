package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-savanna/model"
	"github.com/sheikhrachel/go-savanna/utils"
)

// frontend bundles the render sink and input source of one run
type frontend struct {
	renderer model.Renderer
	input    model.InputSource
	keyboard *model.KeyboardInput // nil when headless
	close    func()
}

// initializeGame sets up the savanna, its stats and the telemetry output
func initializeGame(config utils.Config, outputDir string) (
	*model.Savanna,
	*utils.Stats,
	*utils.StatsRecorder,
	error,
) {
	recorder, err := utils.NewStatsRecorder(outputDir)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to open telemetry output")
	}

	savanna := model.NewSavanna(config)
	stats := utils.NewStats()

	return savanna, stats, recorder, nil
}

// initializeFrontend picks a tcell terminal or plain text output
func initializeFrontend(headless bool, out io.Writer) (*frontend, error) {
	if headless {
		return &frontend{
			renderer: model.NewTextRenderer(out),
			input:    model.NoInput{},
			close:    func() {},
		}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeFrontend] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[initializeFrontend] failed to init screen")
	}

	renderer := model.NewTerminalRenderer(screen)
	keyboard := model.NewKeyboardInput(screen)
	return &frontend{
		renderer: renderer,
		input:    keyboard,
		keyboard: keyboard,
		close:    renderer.Close,
	}, nil
}

// newLogger builds the JSON logger; interactive runs only log when given a file
func newLogger(headless bool, logFile string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", logFile)
		}
		return slog.New(slog.NewJSONHandler(f, opts)), func() { f.Close() }, nil
	case headless:
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), func() {}, nil
	default:
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() {}, nil
	}
}

// newObserver feeds every tick into the stats, the CSV output and the debug log
func newObserver(stats *utils.Stats, recorder *utils.StatsRecorder) model.Observer {
	return func(s *model.Savanna, report model.TickReport) error {
		sample := s.Census()
		sample.Births = report.Births
		sample.Deaths = report.Deaths
		sample.Dropped = report.SpawnFailures
		stats.Update(sample)

		slog.Debug("tick",
			"tick", report.Tick,
			"lions", sample.Lions,
			"antelopes", sample.Antelopes,
			"pairs", sample.Pairs,
			"pairs_formed", report.PairsFormed,
			"dissolved", report.Dissolved,
			"births", report.Births,
			"kills", report.Kills,
			"deaths", report.Deaths,
			"spawn_failures", report.SpawnFailures,
		)

		return recorder.Record(stats, sample)
	}
}

// displayGameInfo logs the starting parameters
func displayGameInfo(config utils.Config, savanna *model.Savanna, headless bool) {
	census := savanna.Census()
	slog.Info("starting savanna",
		"seed", savanna.Seed(),
		"rows", config.Rows,
		"columns", config.Columns,
		"lions", census.Lions,
		"antelopes", census.Antelopes,
		"strict_pairing_scan", config.StrictPairingScan,
		"headless", headless,
	)
}

// displayFinalStats prints a short summary once the terminal is released
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d ticks in %.1f seconds\n",
		stats.TotalTicks, time.Since(stats.StartTime).Seconds())
	fmt.Fprintf(out, "Lions: %d | Antelopes: %d | Births: %d | Deaths: %d | Dropped spawns: %d | Avg Pop: %.1f\n",
		stats.Lions, stats.Antelopes, stats.TotalBirths, stats.TotalDeaths, stats.SpawnFailures, stats.AveragePopulation)
}
