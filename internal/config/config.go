package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"memberpick/internal/domain"
	"memberpick/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".memberpick.toml"

// EnvConfigPath overrides the config file location
const EnvConfigPath = "MEMBERPICK_CONFIG"

// Presentation styles for the member list
const (
	PresentationSheet = "sheet"
	PresentationPush  = "push"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	UISettings UISettings     `toml:"ui"`
	Members    []MemberConfig `toml:"members"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title        string `toml:"title"`
	Presentation string `toml:"presentation"`
	ShowClose    bool   `toml:"show_close"`
	LogLevel     string `toml:"log_level"`
}

// MemberConfig is one [[members]] entry
type MemberConfig struct {
	ID   int    `toml:"id"`
	Name string `toml:"name"`
}

// DomainMembers converts the configured members in file order
func (c *Config) DomainMembers() []domain.Member {
	members := make([]domain.Member, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, domain.Member{ID: m.ID, Name: m.Name})
	}
	return members
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	switch c.UISettings.Presentation {
	case PresentationSheet, PresentationPush:
	default:
		return fmt.Errorf("unknown presentation %q", c.UISettings.Presentation)
	}
	if _, err := zerolog.ParseLevel(c.UISettings.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Resolve(flagPath string) string
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

// Resolve picks the config path: the flag value, then the environment
// (after loading .env if present), then the working directory default
func (cs *configService) Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	// A missing .env file is fine
	_ = godotenv.Load()
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultFileName
}

// LoadFromPath loads configuration from a specific path.
// A missing file yields the default configuration.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(path, cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    path,
			Members: len(cfg.Members),
		})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Title:        "Select Member",
			Presentation: PresentationSheet,
			ShowClose:    true,
			LogLevel:     "info",
		},
	}
}
