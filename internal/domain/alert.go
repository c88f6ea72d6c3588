package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertTimeLayout is the timestamp format used in alert messages.
const AlertTimeLayout = "2006-01-02 15:04:05"

// Alert is an emergency event bound for a notification channel. Alerts
// are formatted and delivered immediately; nothing persists them.
type Alert struct {
	ID       string
	Reason   string
	Location string
	Time     time.Time
}

func NewAlert(reason, location string, at time.Time) Alert {
	return Alert{
		ID:       uuid.NewString(),
		Reason:   reason,
		Location: location,
		Time:     at,
	}
}

func (a Alert) Message() string {
	return fmt.Sprintf("EMERGENCY ALERT! Reason: %s. Location: %s. Time: %s. Contacting caregiver.",
		a.Reason, a.Location, a.Time.Format(AlertTimeLayout))
}
