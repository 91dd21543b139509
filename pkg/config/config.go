// Package config loads librarian settings. There is no ambient global
// configuration: callers load a Config once and thread it explicitly into
// every entry point.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the manager home
// directory.
const FileName = "config.json"

// Config holds the librarian settings.
type Config struct {
	// LibraryPath is the component library root. Relative values are
	// resolved against the home directory the config was loaded from.
	LibraryPath string `mapstructure:"library_path"`

	// Debug widens CLI logging.
	Debug bool `mapstructure:"debug"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{LibraryPath: "library"}
}

// Path returns the location of the config file for a home directory.
func Path(homeDir string) string {
	return filepath.Join(homeDir, FileName)
}

// Load reads configuration with the following priority (highest wins):
// KICAD_LIB_* environment variables, config.json in homeDir, defaults.
// A missing config file is not an error; a malformed one is.
func Load(homeDir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(homeDir)

	v.SetEnvPrefix("KICAD_LIB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.BindEnv("library_path")
	v.BindEnv("debug")

	defaults := Default()
	v.SetDefault("library_path", defaults.LibraryPath)
	v.SetDefault("debug", defaults.Debug)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.LibraryPath == "" {
		cfg.LibraryPath = defaults.LibraryPath
	}
	if !filepath.IsAbs(cfg.LibraryPath) {
		cfg.LibraryPath = filepath.Join(homeDir, cfg.LibraryPath)
	}
	return cfg, nil
}
