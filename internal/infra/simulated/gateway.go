package simulated

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

// Gateway stands in for a real device transport. Sends are logged and
// dropped; reads return synthetic values. The thermostat channel reads
// a temperature in [19.0, 25.0); every other channel reads a random
// power state.
type Gateway struct {
	channels domain.ChannelMap
	logger   *slog.Logger
	rng      *rand.Rand
}

func NewGateway(channels domain.ChannelMap, logger *slog.Logger) *Gateway {
	return NewGatewayWithRand(channels, logger, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGatewayWithRand lets tests supply a deterministic random source.
func NewGatewayWithRand(channels domain.ChannelMap, logger *slog.Logger, rng *rand.Rand) *Gateway {
	return &Gateway{
		channels: channels,
		logger:   logger,
		rng:      rng,
	}
}

func (g *Gateway) SendCommand(_ context.Context, cmd domain.Command) error {
	g.logger.Info("sending command", "channel", cmd.Channel, "payload", cmd.Payload)
	return nil
}

func (g *Gateway) ReadStatus(_ context.Context, channel string) (domain.Reading, error) {
	if thermostat, ok := g.channels.Channel(domain.DeviceThermostat); ok && channel == thermostat {
		reading := domain.Reading{
			Kind:        domain.ReadingTemperature,
			Temperature: 19.0 + g.rng.Float64()*6.0,
			Unit:        "C",
		}
		g.logger.Debug("read status", "channel", channel, "temperature", reading.Temperature)
		return reading, nil
	}

	power := domain.PowerOff
	if g.rng.Intn(2) == 0 {
		power = domain.PowerOn
	}
	g.logger.Debug("read status", "channel", channel, "power", power)
	return domain.Reading{Kind: domain.ReadingPower, Power: power}, nil
}
