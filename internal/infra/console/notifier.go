package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

// Notifier writes alert banners to a local sink, usually stdout. It is
// the mock stand-in for a real delivery channel (SMS, push, email).
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Deliver(_ context.Context, alert domain.Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	rule := strings.Repeat("-", 50)
	_, err := fmt.Fprintf(n.out, "%s\n!!! %s !!!\n%s\n", rule, alert.Message(), rule)
	if err != nil {
		return fmt.Errorf("writing alert: %w", err)
	}
	return nil
}
