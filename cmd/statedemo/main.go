package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tailored-agentic-units/statepattern/observability"
	"github.com/tailored-agentic-units/statepattern/scenario"
	"github.com/tailored-agentic-units/statepattern/state"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to scenario config (.json, .yaml, .yml)")
		initial    = flag.String("initial", "", "Initial state, A or B (overrides config)")
		requests   = flag.String("requests", "", "Comma-separated requests, e.g. request1,request2 or 1,2 (overrides config)")
		logBackend = flag.String("logger", "", "Trace observer: slog, zap or noop (overrides config)")
		verbose    = flag.Bool("verbose", false, "Include request events in the trace")
		metrics    = flag.Bool("metrics", false, "Print Prometheus counters after the run")
	)
	flag.Parse()

	cfg := scenario.DefaultConfig()
	if *configFile != "" {
		loaded, err := scenario.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *initial != "" {
		cfg.Initial = *initial
	}
	if *requests != "" {
		cfg.Requests = scenario.ParseRequests(*requests)
	}
	if *logBackend != "" {
		cfg.Observer = *logBackend
	}

	zapLogger, err := registerLoggers(*verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	fatalf := flushThen(zapLogger, log.Fatalf)

	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		fatalf("Failed to resolve observer: %v", err)
	}

	reg := prometheus.NewRegistry()
	if *metrics {
		counters := state.NewMetricsObserver()
		reg.MustRegister(counters)
		obs = observability.NewMultiObserver(obs, counters)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := scenario.Run(ctx, &cfg, scenario.WithObserver(obs))
	if err != nil {
		fatalf("Scenario failed: %v", err)
	}

	fmt.Printf("Context: %s\n", result.ContextID)
	fmt.Println("\nTransitions:")
	for _, t := range result.Transitions {
		from := t.From
		if from == "" {
			from = "(start)"
		}
		fmt.Printf("  [%d] %s -> %s\n", t.Sequence, from, t.To)
	}
	fmt.Printf("\nRequests: %d\n", result.Requests)
	fmt.Printf("Final state: %s\n", result.Final)

	if *metrics {
		if err := dumpMetrics(reg); err != nil {
			fatalf("Failed to write metrics: %v", err)
		}
	}

	_ = zapLogger.Sync()
}

// flushThen syncs logger before handing off to exit. log.Fatalf skips
// deferred calls, so buffered zap entries would otherwise be lost.
func flushThen(logger *zap.Logger, exit func(format string, args ...any)) func(format string, args ...any) {
	return func(format string, args ...any) {
		_ = logger.Sync()
		exit(format, args...)
	}
}

// registerLoggers replaces the "slog" observer with one bound to stderr at
// the requested verbosity and adds a "zap" observer alongside it.
func registerLoggers(verbose bool) (*zap.Logger, error) {
	slogLevel := slog.LevelInfo
	zapLevel := zapcore.InfoLevel
	if verbose {
		slogLevel = slog.LevelDebug
		zapLevel = zapcore.DebugLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zl, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	observability.RegisterObserver("zap", observability.NewZapObserver(zl))

	return zl, nil
}

func dumpMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	fmt.Println("\nMetrics:")
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
			return err
		}
	}
	return nil
}
