// Package config loads and watches the offview configuration: surface
// defaults, transport sizing, the local resource root, and logging. Values
// come from defaults, an optional TOML file, and OFFVIEW_ environment
// variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config is the root configuration document.
type Config struct {
	Surface   SurfaceConfig   `mapstructure:"surface" json:"surface"`
	Transport TransportConfig `mapstructure:"transport" json:"transport"`
	Local     LocalConfig     `mapstructure:"local" json:"local"`
	Logging   LoggingConfig   `mapstructure:"logging" json:"logging"`
}

// SurfaceConfig controls default view surface behavior.
type SurfaceConfig struct {
	// Width and Height are the initial surface dimensions for new views.
	Width  int `mapstructure:"width" json:"width"`
	Height int `mapstructure:"height" json:"height"`
	// ResizeTimeoutMs bounds how long a waiting resize blocks for its
	// repaint acknowledgement.
	ResizeTimeoutMs int `mapstructure:"resize_timeout_ms" json:"resize_timeout_ms"`
	// DefaultZoom is the initial zoom percent for new views.
	DefaultZoom int `mapstructure:"default_zoom" json:"default_zoom"`
}

// TransportConfig sizes the host/worker pipe.
type TransportConfig struct {
	Capacity int `mapstructure:"capacity" json:"capacity"`
}

// LocalConfig controls local:// resource serving.
type LocalConfig struct {
	// Root is the directory served for local:// URLs and LoadFile paths.
	// Empty disables local resources.
	Root string `mapstructure:"root" json:"root"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from the
// user config directory or the working directory, with OFFVIEW_ environment
// overrides.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("OFFVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "OFFVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OFFVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "OFFVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind OFFVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads defaults, the config file when present, and environment
// variables. A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Get returns the loaded configuration. It panics before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		panic("config: Get before Load")
	}
	return m.config
}

func (m *Manager) setDefaults() {
	d := Default()
	m.viper.SetDefault("surface.width", d.Surface.Width)
	m.viper.SetDefault("surface.height", d.Surface.Height)
	m.viper.SetDefault("surface.resize_timeout_ms", d.Surface.ResizeTimeoutMs)
	m.viper.SetDefault("surface.default_zoom", d.Surface.DefaultZoom)
	m.viper.SetDefault("transport.capacity", d.Transport.Capacity)
	m.viper.SetDefault("local.root", d.Local.Root)
	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}

func (m *Manager) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Width:           800,
			Height:          600,
			ResizeTimeoutMs: 300,
			DefaultZoom:     100,
		},
		Transport: TransportConfig{Capacity: 64},
		Local:     LocalConfig{Root: ""},
		Logging:   LoggingConfig{Level: "info", Format: "auto"},
	}
}

func validate(cfg *Config) error {
	if cfg.Surface.Width <= 0 || cfg.Surface.Height <= 0 {
		return fmt.Errorf("surface dimensions must be positive, got %dx%d",
			cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.Surface.ResizeTimeoutMs <= 0 {
		return fmt.Errorf("surface.resize_timeout_ms must be positive, got %d",
			cfg.Surface.ResizeTimeoutMs)
	}
	if cfg.Surface.DefaultZoom < 10 || cfg.Surface.DefaultZoom > 500 {
		return fmt.Errorf("surface.default_zoom must be within [10, 500], got %d",
			cfg.Surface.DefaultZoom)
	}
	if cfg.Transport.Capacity < 1 {
		return fmt.Errorf("transport.capacity must be at least 1, got %d",
			cfg.Transport.Capacity)
	}
	switch cfg.Logging.Format {
	case "auto", "json", "console":
	default:
		return fmt.Errorf("logging.format must be auto, json or console, got %q",
			cfg.Logging.Format)
	}
	return nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "offview"), nil
}
