package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for qrstudio.
type Config struct {
	Generator GeneratorConfig `koanf:"generator"`
	Output    OutputConfig    `koanf:"output"`
	Preview   PreviewConfig   `koanf:"preview"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// GeneratorConfig holds defaults for new generation requests.
type GeneratorConfig struct {
	Fill        string `koanf:"fill"`
	Background  string `koanf:"background"`
	Format      string `koanf:"format"`
	ModuleSize  int    `koanf:"module_size"`
	Border      int    `koanf:"border"`
	Recovery    string `koanf:"recovery"`
	JPEGQuality int    `koanf:"jpeg_quality"`
	Verify      bool   `koanf:"verify"`
}

// OutputConfig holds save-path settings.
type OutputConfig struct {
	Dir      string `koanf:"dir"`
	Filename string `koanf:"filename"`
}

// PreviewConfig holds terminal preview settings.
type PreviewConfig struct {
	Enabled bool `koanf:"enabled"`
	Width   int  `koanf:"width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads configuration with priority: flags > env > yaml file > defaults.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults.
	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Load YAML config file (if exists).
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// 3. Load environment variables (QRSTUDIO_ prefix).
	if err := k.Load(env.Provider("QRSTUDIO_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "QRSTUDIO_")),
			"_", ".", -1,
		)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// 4. Load CLI flags (highest priority).
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns the per-user config file path if one exists,
// otherwise the empty string.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "qrstudio", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"generator.fill":         "#000000",
		"generator.background":   "#FFFFFF",
		"generator.format":       "png",
		"generator.module_size":  10,
		"generator.border":       2,
		"generator.recovery":     "medium",
		"generator.jpeg_quality": 90,
		"generator.verify":       true,
		"output.dir":             "",
		"output.filename":        "qrcode.png",
		"preview.enabled":        true,
		"preview.width":          72,
		"logging.level":          "info",
		"logging.format":         "json",
	}

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}
