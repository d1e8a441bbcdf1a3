// Command vidcache reads a video-streaming instance, chooses which videos each
// cache server stores, and writes the per-cache video lists.
//
// Usage:
//
//	vidcache -in kittens.in [-out results.out] [-config vidcache.yaml] [-workers N] [-metrics-out vidcache.prom]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/vidcache/config"
	"github.com/katalvlaran/vidcache/dataset"
	"github.com/katalvlaran/vidcache/metrics"
	"github.com/katalvlaran/vidcache/placement"
)

func main() {
	var (
		in         = flag.String("in", "", "input data set (required)")
		out        = flag.String("out", "results.out", "output file")
		cfgPath    = flag.String("config", "", "YAML configuration file")
		workers    = flag.Int("workers", 0, "concurrent cache solves (overrides config when > 0)")
		metricsOut = flag.String("metrics-out", "", "write Prometheus text metrics to this file")
	)
	flag.Parse()

	if err := run(*in, *out, *cfgPath, *workers, *metricsOut); err != nil {
		fmt.Fprintln(os.Stderr, "vidcache:", err)
		os.Exit(1)
	}
}

func run(in, out, cfgPath string, workers int, metricsOut string) error {
	if in == "" {
		return errors.New("-in is required")
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	zl, err := newZap(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	log := zapr.NewLogger(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logr.NewContext(ctx, log)

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	opts, err := cfg.PlannerOptions()
	if err != nil {
		return err
	}
	opts = append(opts, placement.WithObserver(recorder))

	p, err := dataset.ParseFile(in)
	if err != nil {
		return err
	}
	log.Info("instance loaded", "path", in, "videos", p.VideoCount(), "endpoints", p.EndpointCount(),
		"requests", len(p.Requests), "caches", p.CacheCount)

	rep, err := placement.New(opts...).Plan(ctx, p)
	if err != nil {
		return err
	}
	if err = dataset.WriteFile(out, rep.Assignments); err != nil {
		return err
	}
	log.Info("placement written", "path", out, "run", rep.RunID, "score", rep.Score)

	if metricsOut != "" {
		if err = prometheus.WriteToTextfile(metricsOut, registry); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

// newZap builds the process logger. Debug level enables the per-cache V(1)
// lines emitted by the planner.
func newZap(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Level == "debug" {
		// logr V(1) maps to zap level -1.
		zc.Level = zap.NewAtomicLevelAt(-1)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return zc.Build()
}
