package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
)

type Config struct {
	Profile  ProfileConfig     `yaml:"profile"`
	Devices  map[string]string `yaml:"devices"`
	Control  ControlConfig     `yaml:"control"`
	Listen   ListenConfig      `yaml:"listen"`
	Pushover PushoverConfig    `yaml:"pushover"`
	Log      LogConfig         `yaml:"log"`
}

type ProfileConfig struct {
	Name                 string  `yaml:"name"`
	PreferredTemperature float64 `yaml:"preferred_temperature"`
	BedtimeHour          int     `yaml:"bedtime_hour"`
}

type ControlConfig struct {
	ClimateInterval  string `yaml:"climate_interval"`
	LightingInterval string `yaml:"lighting_interval"`
}

type ListenConfig struct {
	Source    string `yaml:"source"`
	HTTPAddr  string `yaml:"http_addr"`
	AuthToken string `yaml:"auth_token"`
	FileDir   string `yaml:"file_dir"`
}

type PushoverConfig struct {
	Token   string `yaml:"token"`
	UserKey string `yaml:"user_key"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Profile.Name == "" {
		c.Profile.Name = "Alex"
	}
	if c.Profile.PreferredTemperature == 0 {
		c.Profile.PreferredTemperature = 22.0
	}
	if c.Profile.BedtimeHour == 0 {
		c.Profile.BedtimeHour = 21
	}
	if len(c.Devices) == 0 {
		c.Devices = domain.DefaultChannels()
	}
	if c.Control.ClimateInterval == "" {
		c.Control.ClimateInterval = "1m"
	}
	if c.Control.LightingInterval == "" {
		c.Control.LightingInterval = "30s"
	}
	if c.Listen.Source == "" {
		c.Listen.Source = "stdin"
	}
	if c.Listen.HTTPAddr == "" {
		c.Listen.HTTPAddr = ":8080"
	}
	if c.Listen.FileDir == "" {
		c.Listen.FileDir = "./commands"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) ChannelMap() domain.ChannelMap {
	channels := make(domain.ChannelMap, len(c.Devices))
	for device, channel := range c.Devices {
		channels[device] = channel
	}
	return channels
}

func (c *Config) UserProfile() domain.Profile {
	return domain.Profile{
		Name:          c.Profile.Name,
		PreferredTemp: c.Profile.PreferredTemperature,
		BedtimeHour:   c.Profile.BedtimeHour,
	}
}
