package domain

// Logical device names used throughout the system. The channel each one
// maps to comes from configuration.
const (
	DeviceLivingRoomLight = "living_room_light"
	DeviceThermostat      = "thermostat"
	DeviceEmergencyButton = "emergency_button"
	DeviceMotionSensor    = "motion_sensor"
)

// ChannelMap maps logical device names to channel identifiers. It is
// fixed at startup and never mutated afterwards.
type ChannelMap map[string]string

func DefaultChannels() ChannelMap {
	return ChannelMap{
		DeviceLivingRoomLight: "iot/lights/lr",
		DeviceThermostat:      "iot/hvac/temp",
		DeviceEmergencyButton: "iot/alerts/panic",
		DeviceMotionSensor:    "iot/sensors/motion",
	}
}

func (m ChannelMap) Channel(device string) (string, bool) {
	c, ok := m[device]
	return c, ok
}

type PowerState string

const (
	PowerOn  PowerState = "ON"
	PowerOff PowerState = "OFF"
)

type ReadingKind string

const (
	ReadingTemperature ReadingKind = "temperature"
	ReadingPower       ReadingKind = "power"
)

// Reading is a point-in-time device status. Kind indicates which value
// fields are meaningful. Readings are produced per query and not stored.
type Reading struct {
	Kind        ReadingKind
	Temperature float64
	Unit        string
	Power       PowerState
}
