package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the local and SSH frontends.
// Gameplay tuning is fixed in the game package and is not configurable.
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Game    GameConfig    `toml:"game" yaml:"game"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type ServerConfig struct {
	Host        string        `toml:"host" yaml:"host"`
	Port        string        `toml:"port" yaml:"port"`
	HostKeyPath string        `toml:"host_key_path" yaml:"host_key_path"`
	IdleTimeout time.Duration `toml:"idle_timeout" yaml:"idle_timeout"` // 0 disables the idle disconnect
}

type GameConfig struct {
	FPS   int    `toml:"fps" yaml:"fps"`
	Seed  string `toml:"seed" yaml:"seed"`   // empty = seeded from the clock
	Sound bool   `toml:"sound" yaml:"sound"` // local speaker output (cmd/game only)
}

type LoggingConfig struct {
	Level  string   `toml:"level" yaml:"level"`
	Format string   `toml:"format" yaml:"format"` // "json" or "console"
	Output []string `toml:"output" yaml:"output"` // zap output paths; empty discards logs
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("parse config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Game.FPS <= 0 {
		return nil, fmt.Errorf("parse config %s: game.fps must be positive, got %d", path, cfg.Game.FPS)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set and returns the defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
			IdleTimeout: 2 * time.Minute,
		},
		Game: GameConfig{
			FPS:   60,
			Sound: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
