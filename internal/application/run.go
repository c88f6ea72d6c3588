package application

import (
	"context"
	"fmt"
	"io"
	"time"
)

// RunConfig sets the intervals for the periodic control passes. A zero
// interval disables that pass.
type RunConfig struct {
	ClimateInterval  time.Duration
	LightingInterval time.Duration
}

// Run drives the controller until ctx is done: it handles text commands
// from source as they arrive and runs the climate and lighting passes
// on their intervals. Per-command and per-pass errors are logged, not
// fatal.
func (c *Controller) Run(ctx context.Context, source CommandSource, cfg RunConfig) error {
	if err := source.Start(ctx); err != nil {
		return fmt.Errorf("starting command source: %w", err)
	}
	defer source.Stop()

	commands := make(chan string)
	go func() {
		defer close(commands)
		for {
			text, err := source.NextCommand(ctx)
			if err != nil {
				if err != io.EOF && ctx.Err() == nil {
					c.logger.Error("command source", "error", err)
				}
				return
			}
			select {
			case commands <- text:
			case <-ctx.Done():
				return
			}
		}
	}()

	var climateTick, lightingTick <-chan time.Time
	if cfg.ClimateInterval > 0 {
		t := time.NewTicker(cfg.ClimateInterval)
		defer t.Stop()
		climateTick = t.C
	}
	if cfg.LightingInterval > 0 {
		t := time.NewTicker(cfg.LightingInterval)
		defer t.Stop()
		lightingTick = t.C
	}

	c.logger.Info("controller ready",
		"source", source.Name(),
		"climate_interval", cfg.ClimateInterval,
		"lighting_interval", cfg.LightingInterval,
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-commands:
			if !ok {
				return ctx.Err()
			}
			if err := c.HandleVoiceCommand(ctx, text); err != nil {
				c.logger.Error("handling command", "error", err)
			}
		case <-climateTick:
			if err := c.RunClimateCycle(ctx); err != nil {
				c.logger.Error("climate cycle", "error", err)
			}
		case <-lightingTick:
			if err := c.RunLightingCycleAuto(ctx); err != nil {
				c.logger.Error("lighting cycle", "error", err)
			}
		}
	}
}
