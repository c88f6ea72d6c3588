package domain

// Command is a payload addressed to a device channel. Commands are built
// and sent in one step; nothing queues or retries them.
type Command struct {
	Channel string
	Payload map[string]any
}

// Payload keys understood by the devices.
const (
	KeyState      = "state"
	KeyTargetTemp = "target_temp"
)
