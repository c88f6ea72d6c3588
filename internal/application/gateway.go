package application

import (
	"context"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

// Gateway sends commands to device channels and reads device status. A
// real implementation would publish over a transport like MQTT; the
// simulated one logs sends and synthesizes readings.
type Gateway interface {
	SendCommand(ctx context.Context, cmd domain.Command) error
	ReadStatus(ctx context.Context, channel string) (domain.Reading, error)
}
