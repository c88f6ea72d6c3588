package application_test

import (
	"errors"
	"testing"

	"github.com/Meyredha/Smart-Home-IEEE/internal/application"
)

func TestParseVoiceCommand_Light(t *testing.T) {
	tests := []struct {
		text string
		want application.LightState
	}{
		{"Turn the living room light ON", application.LightOn},
		{"turn the light off please", application.LightOff},
		{"LIGHT OFF", application.LightOff},
		{"turn the lights on", application.LightOn},
		{"switch the lights off", application.LightOff},
		// "on" wins when both words appear
		{"turn the light on, not off", application.LightOn},
	}

	for _, tt := range tests {
		intent, err := application.ParseVoiceCommand(tt.text)
		if err != nil {
			t.Fatalf("ParseVoiceCommand(%q) error: %v", tt.text, err)
		}
		if intent.Kind != application.IntentLight {
			t.Errorf("kind: got %s, want %s", intent.Kind, application.IntentLight)
		}
		if intent.LightState != tt.want {
			t.Errorf("ParseVoiceCommand(%q) state = %s, want %s", tt.text, intent.LightState, tt.want)
		}
	}
}

func TestParseVoiceCommand_SetTemperature(t *testing.T) {
	intent, err := application.ParseVoiceCommand("Please set the temperature to 21 degrees")
	if err != nil {
		t.Fatalf("ParseVoiceCommand error: %v", err)
	}
	if intent.Kind != application.IntentSetTemp {
		t.Errorf("kind: got %s, want %s", intent.Kind, application.IntentSetTemp)
	}
	if intent.TargetTemp != 21 {
		t.Errorf("target temp: got %v, want 21", intent.TargetTemp)
	}
}

func TestParseVoiceCommand_DecimalQuirk(t *testing.T) {
	// Pins the historical digit-strip behavior: 21.5 parses as 215.
	intent, err := application.ParseVoiceCommand("set the temperature to 21.5 degrees")
	if err != nil {
		t.Fatalf("ParseVoiceCommand error: %v", err)
	}
	if intent.TargetTemp != 215 {
		t.Errorf("target temp: got %v, want 215", intent.TargetTemp)
	}
}

func TestParseVoiceCommand_NoTemperatureValue(t *testing.T) {
	_, err := application.ParseVoiceCommand("set the temperature to warm degrees")
	if !errors.Is(err, application.ErrNoTemperature) {
		t.Errorf("error: got %v, want ErrNoTemperature", err)
	}
}

func TestParseVoiceCommand_Emergency(t *testing.T) {
	for _, text := range []string{"Emergency, I need help!", "help me", "EMERGENCY"} {
		intent, err := application.ParseVoiceCommand(text)
		if err != nil {
			t.Fatalf("ParseVoiceCommand(%q) error: %v", text, err)
		}
		if intent.Kind != application.IntentEmergency {
			t.Errorf("ParseVoiceCommand(%q) kind = %s, want %s", text, intent.Kind, application.IntentEmergency)
		}
	}
}

func TestParseVoiceCommand_NotUnderstood(t *testing.T) {
	for _, text := range []string{"xyz", "", "play some music", "light it up"} {
		_, err := application.ParseVoiceCommand(text)
		if !errors.Is(err, application.ErrNotUnderstood) {
			t.Errorf("ParseVoiceCommand(%q) error = %v, want ErrNotUnderstood", text, err)
		}
	}
}
