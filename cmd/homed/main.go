package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/config"
	"github.com/Meyredha/Smart-Home-IEEE/internal/application"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/console"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/pushover"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/simulated"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/textinput"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	demo := flag.Bool("demo", false, "run the scripted demonstration and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("loading config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	channels := cfg.ChannelMap()
	gateway := simulated.NewGateway(channels, logger)

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey)
	} else {
		notifier = console.NewNotifier(os.Stdout)
	}

	controller := application.NewController(
		cfg.UserProfile(),
		channels,
		gateway,
		notifier,
		logger,
	)

	logger.Info("smart home system initialized",
		"resident", cfg.Profile.Name,
		"preferred_temperature", cfg.Profile.PreferredTemperature,
	)

	if *demo {
		runDemo(ctx, controller, logger)
		return
	}

	source := createSource(cfg.Listen, logger)

	runCfg := application.RunConfig{
		ClimateInterval:  parseInterval(cfg.Control.ClimateInterval, time.Minute, logger),
		LightingInterval: parseInterval(cfg.Control.LightingInterval, 30*time.Second, logger),
	}

	if err := controller.Run(ctx, source, runCfg); err != nil && err != context.Canceled {
		logger.Error("controller error", "error", err)
		os.Exit(1)
	}
}

// runDemo replays the canonical demonstration script: three voice
// commands, one climate pass, two lighting passes, one sensor alert.
func runDemo(ctx context.Context, controller *application.Controller, logger *slog.Logger) {
	voiceCommands := []string{
		"Turn the living room light ON",
		"Emergency, I need help!",
		"Please set the temperature to 21 degrees",
	}
	for _, text := range voiceCommands {
		if err := controller.HandleVoiceCommand(ctx, text); err != nil {
			logger.Warn("voice command failed", "text", text, "error", err)
		}
	}

	if err := controller.RunClimateCycle(ctx); err != nil {
		logger.Error("climate cycle failed", "error", err)
	}

	for _, hour := range []int{14, 22} {
		if err := controller.RunLightingCycle(ctx, true, hour); err != nil {
			logger.Error("lighting cycle failed", "hour", hour, "error", err)
		}
	}

	if err := controller.TriggerSensorEmergency(ctx); err != nil {
		logger.Error("sensor emergency failed", "error", err)
	}

	logger.Info("demonstration complete")
}

func createSource(cfg config.ListenConfig, logger *slog.Logger) application.CommandSource {
	switch cfg.Source {
	case "http":
		return textinput.NewHTTPSource(cfg.HTTPAddr, cfg.AuthToken, logger)
	case "file":
		return textinput.NewFileSource(cfg.FileDir)
	case "stdin":
		return textinput.NewStdinSource(os.Stdin)
	default:
		logger.Warn("unknown command source, using stdin", "source", cfg.Source)
		return textinput.NewStdinSource(os.Stdin)
	}
}

func parseInterval(value string, fallback time.Duration, logger *slog.Logger) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid interval, using default", "error", err, "value", value)
		return fallback
	}
	return d
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
