package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

type AppConfig struct {
	Port string

	// FrameInterval controls how often the frame clock samples the animations.
	FrameInterval time.Duration

	// Tab selection limiter.
	SelectRate  float64 // selections per second (0 = unlimited)
	SelectBurst int     // max burst of selections

	// InitialScreen is selected right after the controller publishes Today.
	InitialScreen weather.Screen
	InitialKind   string
	InitialDay    string
}

// Load reads configuration from environment with sensible defaults. When
// WEATHER_CONFIG_FILE names a YAML file, its values are applied first and the
// environment overrides them.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := Defaults()

	if path := os.Getenv("WEATHER_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getenvDefault("PORT", cfg.Port)

	// Frame interval: default ~60 frames per second.
	intervalStr := getenvDefault("FRAME_INTERVAL", cfg.FrameInterval.String())
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FRAME_INTERVAL: %w", err)
	}
	if interval < time.Millisecond {
		return nil, fmt.Errorf("invalid FRAME_INTERVAL: must be at least 1ms")
	}
	cfg.FrameInterval = interval

	cfg.SelectRate = getenvFloat("SELECT_RATE", cfg.SelectRate)
	cfg.SelectBurst = getenvInt("SELECT_BURST", cfg.SelectBurst)

	cfg.InitialKind = getenvDefault("INITIAL_SCREEN", cfg.InitialKind)
	cfg.InitialDay = getenvDefault("INITIAL_DAY", cfg.InitialDay)
	screen, err := parseInitialScreen(cfg.InitialKind, cfg.InitialDay)
	if err != nil {
		return nil, err
	}
	cfg.InitialScreen = screen

	return cfg, nil
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *AppConfig {
	return &AppConfig{
		Port:          "8080",
		FrameInterval: 16 * time.Millisecond,
		SelectRate:    10,
		SelectBurst:   5,
		InitialScreen: weather.Today(),
		InitialKind:   "today",
	}
}

// fileConfig mirrors AppConfig with YAML-friendly field types.
type fileConfig struct {
	Port          string   `yaml:"port"`
	FrameInterval string   `yaml:"frame_interval"`
	SelectRate    *float64 `yaml:"select_rate"`
	SelectBurst   *int     `yaml:"select_burst"`
	InitialScreen string   `yaml:"initial_screen"`
	InitialDay    string   `yaml:"initial_day"`
}

func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.FrameInterval != "" {
		d, err := time.ParseDuration(fc.FrameInterval)
		if err != nil {
			return fmt.Errorf("invalid frame_interval in %s: %w", path, err)
		}
		c.FrameInterval = d
	}
	if fc.SelectRate != nil {
		c.SelectRate = *fc.SelectRate
	}
	if fc.SelectBurst != nil {
		c.SelectBurst = *fc.SelectBurst
	}
	if fc.InitialScreen != "" {
		c.InitialKind = fc.InitialScreen
	}
	if fc.InitialDay != "" {
		c.InitialDay = fc.InitialDay
	}
	return nil
}

func parseInitialScreen(kind, day string) (weather.Screen, error) {
	k, err := weather.ParseScreenKind(kind)
	if err != nil {
		return weather.Screen{}, fmt.Errorf("invalid INITIAL_SCREEN: %w", err)
	}

	var screen weather.Screen
	switch k {
	case weather.ScreenNextDays:
		if day == "" {
			day = "Wednesday"
		}
		screen = weather.NextDays(day)
	case weather.ScreenTomorrow:
		screen = weather.Tomorrow()
	case weather.ScreenToday:
		screen = weather.Today()
	default:
		return weather.Screen{}, fmt.Errorf("invalid INITIAL_SCREEN: %s is not a tab", k)
	}
	return screen, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
