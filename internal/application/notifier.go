package application

import (
	"context"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

// Notifier delivers emergency alerts to caregivers.
type Notifier interface {
	Deliver(ctx context.Context, alert domain.Alert) error
}

type NoopNotifier struct{}

func (n *NoopNotifier) Deliver(_ context.Context, _ domain.Alert) error {
	return nil
}
