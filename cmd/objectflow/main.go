// Command objectflow runs an object flow graph loaded from an instance table.
//
// Usage:
//
//	objectflow -instances flow.yaml [flags]
//
// Flags:
//
//	-instances     Instance table (YAML) to load
//	-tick          Wall-clock period between ticks (default 100ms)
//	-step          Logical time added per tick (default 10)
//	-time-bits     Width of the logical clock in bits (default 32)
//	-steps         Stop after this many ticks (0 runs until interrupted)
//	-log-level     Log level: debug, info, warn, error
//	-flow-log      Write a CBOR flow trace to this file
//	-interactive   Start the interactive console
//	-version       Print the supported table format version
//
// Examples:
//
//	# Run the sample chain for 50 ticks with a trace
//	objectflow -instances testdata/chain.yaml -steps 50 -flow-log chain.flog
//
//	# Explore a flow by hand
//	objectflow -instances testdata/chain.yaml -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/objectflow/objectflow-go/cmd/objectflow/interactive"
	"github.com/objectflow/objectflow-go/pkg/handlers"
	"github.com/objectflow/objectflow-go/pkg/instance"
	flowlog "github.com/objectflow/objectflow-go/pkg/log"
	"github.com/objectflow/objectflow-go/pkg/model"
	"github.com/objectflow/objectflow-go/pkg/version"
)

// Config holds the runner configuration.
type Config struct {
	Instances   string
	Tick        time.Duration
	Step        uint
	TimeBits    uint
	Steps       int
	LogLevel    string
	FlowLog     string
	Interactive bool
}

var (
	config      Config
	showVersion bool
)

func init() {
	flag.StringVar(&config.Instances, "instances", "", "Instance table (YAML) to load")
	flag.DurationVar(&config.Tick, "tick", 100*time.Millisecond, "Wall-clock period between ticks")
	flag.UintVar(&config.Step, "step", 10, "Logical time added per tick")
	flag.UintVar(&config.TimeBits, "time-bits", model.DefaultTimeBits, "Width of the logical clock in bits (1-32)")
	flag.IntVar(&config.Steps, "steps", 0, "Stop after this many ticks (0 runs until interrupted)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.FlowLog, "flow-log", "", "Write a CBOR flow trace to this file")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start the interactive console")
	flag.BoolVar(&showVersion, "version", false, "Print the supported table format version and exit")
}

// traceLimit bounds the events kept for the console trace command.
const traceLimit = 1000

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("objectflow (table format %s)\n", version.Current)
		return
	}

	logger := newLogger(os.Stderr, config.LogLevel)

	if err := validateConfig(config); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	if err := run(config, logger); err != nil {
		logger.Error("objectflow failed", "error", err)
		os.Exit(1)
	}
}

func validateConfig(cfg Config) error {
	if cfg.Instances == "" {
		return errors.New("-instances is required")
	}
	if cfg.TimeBits == 0 || cfg.TimeBits > 32 {
		return fmt.Errorf("time-bits must be 1-32, got %d", cfg.TimeBits)
	}
	if cfg.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", cfg.Tick)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// tracers assembles the flow tracers requested by the configuration.
// The returned close function flushes the trace file, if any.
func tracers(cfg Config, logger *slog.Logger, recorder *flowlog.Recorder) (flowlog.Logger, func(), error) {
	var loggers []flowlog.Logger
	closeFn := func() {}

	if cfg.FlowLog != "" {
		fl, err := flowlog.NewFileLogger(cfg.FlowLog)
		if err != nil {
			return nil, nil, fmt.Errorf("open flow log: %w", err)
		}
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("close flow log", "error", err)
			}
			logger.Info("flow log closed", "file", cfg.FlowLog, "events", fl.Written())
		}
	}
	if recorder != nil {
		loggers = append(loggers, recorder)
	}
	if cfg.LogLevel == "debug" {
		loggers = append(loggers, flowlog.NewSlogAdapter(logger))
	}

	multi := flowlog.NewMultiLogger(loggers...)
	if multi.Len() == 0 {
		return nil, closeFn, nil
	}
	return multi, closeFn, nil
}

// newRegistry loads the instance table into a fresh registry.
func newRegistry(cfg Config, logger *slog.Logger, tracer flowlog.Logger) (*model.Registry, error) {
	table, err := instance.Load(cfg.Instances)
	if err != nil {
		return nil, err
	}

	opts := []model.Option{
		model.WithFactory(handlers.NewFactory()),
		model.WithLogger(logger),
		model.WithTimeBits(cfg.TimeBits),
	}
	if tracer != nil {
		opts = append(opts, model.WithTracer(tracer))
	}
	reg := model.NewRegistry(opts...)

	if err := table.Build(reg); err != nil {
		return nil, err
	}
	logger.Info("instances loaded", "file", cfg.Instances, "name", table.Name, "objects", reg.Len(), "registry", reg.ID())
	return reg, nil
}

func run(cfg Config, logger *slog.Logger) error {
	var recorder *flowlog.Recorder
	if cfg.Interactive {
		recorder = flowlog.NewRecorder(traceLimit)
	}

	tracer, closeTrace, err := tracers(cfg, logger, recorder)
	if err != nil {
		return err
	}
	defer closeTrace()

	reg, err := newRegistry(cfg, logger, tracer)
	if err != nil {
		return err
	}

	sim := NewSimulation(reg, model.Time(cfg.Step), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if cfg.Interactive {
		console, err := interactive.New(sim, reg, recorder)
		if err != nil {
			return err
		}
		go stopOnSignal(ctx, sigCh, cancel, logger, func() { _ = console.Close() })
		// The console drives the clock by hand.
		console.Run(ctx, cancel)
		return nil
	}

	go stopOnSignal(ctx, sigCh, cancel, logger, nil)
	sim.Run(ctx, cfg.Tick, cfg.Steps)

	logger.Info("stopped", "now", sim.Now())
	return nil
}

// stopOnSignal cancels the run when a signal arrives and then calls stop,
// if set, to unblock work that does not watch ctx. It returns without
// calling stop once ctx is done.
func stopOnSignal(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc, logger *slog.Logger, stop func()) {
	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
		cancel()
		if stop != nil {
			stop()
		}
	case <-ctx.Done():
	}
}
