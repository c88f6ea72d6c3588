package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

// Fixed alert strings for the two emergency triggers.
const (
	ReasonVoicePanic   = "Voice Triggered Panic"
	ReasonFallDetected = "Fall Detected by Sensor"
	LocationLivingRoom = "Living Room"
	LocationBedroom    = "Bedroom"
)

// Controller orchestrates voice commands, periodic control passes, and
// emergency alerts. It holds no state across invocations; every public
// operation is a pure function of its inputs plus collaborator calls.
type Controller struct {
	profile  domain.Profile
	channels domain.ChannelMap
	gateway  Gateway
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewController(
	profile domain.Profile,
	channels domain.ChannelMap,
	gateway Gateway,
	notifier Notifier,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		profile:  profile,
		channels: channels,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock overrides the wall clock. Tests use it to pin timestamps and
// the hour used by automatic lighting passes.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// HandleVoiceCommand parses the text and dispatches the resulting
// intent. Parse failures are returned without any command or alert
// being issued.
func (c *Controller) HandleVoiceCommand(ctx context.Context, text string) error {
	c.logger.Info("voice command received", "text", text)

	intent, err := ParseVoiceCommand(text)
	if err != nil {
		c.logger.Warn("voice command rejected", "text", text, "error", err)
		return err
	}

	switch intent.Kind {
	case IntentLight:
		return c.sendTo(ctx, domain.DeviceLivingRoomLight, map[string]any{
			domain.KeyState: string(intent.LightState),
		})
	case IntentSetTemp:
		return c.sendTo(ctx, domain.DeviceThermostat, map[string]any{
			domain.KeyTargetTemp: intent.TargetTemp,
		})
	case IntentEmergency:
		return c.dispatchAlert(ctx, ReasonVoicePanic, LocationLivingRoom)
	default:
		return ErrNotUnderstood
	}
}

// RunClimateCycle reads the thermostat, computes a target from the
// resident's preference, and sends it back as the new setpoint.
func (c *Controller) RunClimateCycle(ctx context.Context) error {
	channel, ok := c.channels.Channel(domain.DeviceThermostat)
	if !ok {
		return fmt.Errorf("no channel configured for %q", domain.DeviceThermostat)
	}

	reading, err := c.gateway.ReadStatus(ctx, channel)
	if err != nil {
		return fmt.Errorf("reading thermostat: %w", err)
	}

	target := SuggestClimateTarget(reading.Temperature, c.profile.PreferredTemp)
	c.logger.Info("climate decision",
		"current", reading.Temperature,
		"preferred", c.profile.PreferredTemp,
		"target", target,
	)

	return c.sendTo(ctx, domain.DeviceThermostat, map[string]any{
		domain.KeyTargetTemp: target,
	})
}

// RunLightingCycle derives the time of day from hour, decides the light
// state, and sends it to the living room light.
func (c *Controller) RunLightingCycle(ctx context.Context, motion bool, hour int) error {
	tod := TimeOfDayForHour(hour)
	state := DecideLighting(tod, motion)
	c.logger.Info("lighting decision",
		"time_of_day", tod,
		"motion", motion,
		"state", state,
	)

	return c.sendTo(ctx, domain.DeviceLivingRoomLight, map[string]any{
		domain.KeyState: string(state),
	})
}

// RunLightingCycleAuto is the timer-driven variant: motion comes from
// the motion sensor channel (power ON means motion) and the hour from
// the clock.
func (c *Controller) RunLightingCycleAuto(ctx context.Context) error {
	motion := false
	if channel, ok := c.channels.Channel(domain.DeviceMotionSensor); ok {
		reading, err := c.gateway.ReadStatus(ctx, channel)
		if err != nil {
			return fmt.Errorf("reading motion sensor: %w", err)
		}
		motion = reading.Power == domain.PowerOn
	}

	return c.RunLightingCycle(ctx, motion, c.now().Hour())
}

// TriggerSensorEmergency raises the alert a fall sensor would produce.
func (c *Controller) TriggerSensorEmergency(ctx context.Context) error {
	return c.dispatchAlert(ctx, ReasonFallDetected, LocationBedroom)
}

func (c *Controller) sendTo(ctx context.Context, device string, payload map[string]any) error {
	channel, ok := c.channels.Channel(device)
	if !ok {
		return fmt.Errorf("no channel configured for %q", device)
	}

	cmd := domain.Command{Channel: channel, Payload: payload}
	if err := c.gateway.SendCommand(ctx, cmd); err != nil {
		return fmt.Errorf("sending to %s: %w", channel, err)
	}
	return nil
}

func (c *Controller) dispatchAlert(ctx context.Context, reason, location string) error {
	alert := domain.NewAlert(reason, location, c.now())
	c.logger.Info("dispatching alert",
		"id", alert.ID,
		"reason", reason,
		"location", location,
	)

	if err := c.notifier.Deliver(ctx, alert); err != nil {
		return fmt.Errorf("delivering alert: %w", err)
	}
	return nil
}
