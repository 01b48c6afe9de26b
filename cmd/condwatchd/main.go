package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/condwatch/condwatch/internal/archive"
	"github.com/condwatch/condwatch/internal/config"
	"github.com/condwatch/condwatch/internal/feed"
	"github.com/condwatch/condwatch/internal/historian"
	"github.com/condwatch/condwatch/internal/logger"
	"github.com/condwatch/condwatch/internal/monitor"
	"github.com/condwatch/condwatch/internal/stats"
)

const (
	maxBatchLineBytes = 1 << 20
	statsReadTimeout  = 5 * time.Second
)

var (
	cfg      *config.Config
	engine   *monitor.Engine
	hist     *historian.Historian
	recorder archive.Recorder
	pipeline *stats.Pipeline
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel == "debug", cfg.LogLevel == "info", logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	var err error

	engine, err = monitor.NewEngine(tuningFromConfig(cfg))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize monitor engine")
	}

	hist, err = historian.New(historian.Config{
		Capacity:          cfg.HistorianCapacity,
		AmplitudeWarning:  cfg.AmplitudeWarning,
		AmplitudeCritical: cfg.AmplitudeCritical,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize historian")
	}

	recorder, err = archive.NewService(archive.Config{Enabled: cfg.Archive, DBPath: cfg.ArchiveDB})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize snapshot archive")
	}

	pipeline = stats.NewPipeline()
	if cfg.StatsListen != "" {
		go serveStats(cfg.StatsListen)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	cleanup()
}

func tuningFromConfig(c *config.Config) monitor.Tuning {
	return monitor.Tuning{
		PeakWindow:          c.PeakWindow,
		TrendWindow:         c.TrendWindow,
		Decimation:          c.Decimation,
		AmplitudeAlpha:      c.AmplitudeAlpha,
		TemperatureAlpha:    c.TemperatureAlpha,
		NoiseFloor:          c.NoiseFloor,
		MinSlope:            c.MinSlope,
		MaxHorizon:          c.MaxHorizon,
		AmplitudeCritical:   c.AmplitudeCritical,
		TemperatureWarning:  c.TemperatureWarning,
		TemperatureCritical: c.TemperatureCritical,
	}
}

// loop processes one batch line to completion before reading the next.
func loop(ctx context.Context) error {
	in := os.Stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		processBatch(ctx, line)
	}

	return scanner.Err()
}

func processBatch(ctx context.Context, line []byte) {
	samples, dropped, err := feed.ParseBatch(line)
	if err != nil {
		pipeline.ObserveMalformedLine()
		logger.Warn().Err(err).Msg("Skipping undecodable batch line")
		return
	}

	latest := make(map[string]time.Time, len(samples))
	for i := range samples {
		s := samples[i]
		hist.Add(s.ID, historian.Record{
			Timestamp:   s.Timestamp,
			Amplitude:   s.Amplitude,
			Temperature: s.Temperature,
		})
		latest[s.ID] = s.Timestamp
	}

	batch := engine.ProcessBatch(samples)
	pipeline.ObserveBatch(batch.Accepted, batch.Dropped+dropped, len(batch.Updated))
	pipeline.SetEntitiesTracked(engine.EntityCount())

	for _, id := range batch.Updated {
		snap, ok := engine.Snapshot(id)
		if !ok {
			continue
		}
		logSnapshot(id, snap)

		if err := recorder.Record(ctx, &archive.Snapshot{
			EntityID:            id,
			Timestamp:           latest[id],
			SmoothedAmplitude:   snap.SmoothedAmplitude,
			DegradationSlope:    snap.DegradationSlope,
			EstimatedRUL:        snap.EstimatedRUL,
			SmoothedTemperature: snap.SmoothedTemperature,
			ThermalStatus:       snap.ThermalStatus.String(),
		}); err != nil {
			logger.Error().Err(err).Str("entity", id).Msg("failed to archive snapshot")
		}
	}
}

func logSnapshot(id string, snap monitor.Snapshot) {
	logger.Info().
		Str("entity", id).
		Float64("smoothed_amplitude", snap.SmoothedAmplitude).
		Float64("degradation_slope", snap.DegradationSlope).
		Float64("estimated_rul", snap.EstimatedRUL).
		Float64("smoothed_temperature", snap.SmoothedTemperature).
		Str("thermal_status", snap.ThermalStatus.String()).
		Msg("")
}

func serveStats(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", pipeline.Handler())

	server := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: statsReadTimeout,
	}
	logger.Info().Str("addr", addr).Msg("Serving pipeline stats")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("stats listener failed")
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func cleanup() {
	if cfg.ExportDir != "" {
		exportAll(cfg.ExportDir)
	}
	if err := recorder.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close snapshot archive")
	}
	logger.Info().Msg("Exiting...")
}

func exportAll(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Msg("failed to create export directory")
		return
	}

	for _, id := range hist.IDs() {
		name := strings.ReplaceAll(id, string(os.PathSeparator), "_") + ".csv"
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			logger.Error().Err(err).Str("entity", id).Msg("failed to create export file")
			continue
		}
		if err := hist.Export(id, f); err != nil {
			logger.Error().Err(err).Str("entity", id).Msg("failed to export historian buffer")
		}
		f.Close()
	}
}
