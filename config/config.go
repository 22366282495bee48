// Package config loads palz settings from a config file, the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fabiofdsantos/palz/util"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is used for the config directory and file names.
	AppName = "palz"
	// EnvPrefix prefixes environment overrides, e.g. PALZ_THREADS.
	EnvPrefix = "PALZ"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Threads    int       `mapstructure:"threads"`
	IgnoreFile string    `mapstructure:"ignore_file"`
	Report     string    `mapstructure:"report"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var homeDir = os.UserHomeDir

// Loader wraps a viper instance so flags can be bound before loading.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with every default registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("ignore_file", util.DefaultIgnoreFile)
	v.SetDefault("report", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlag makes flag override the config key when it is set on the command
// line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag for config key %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads configPath, or when empty palz.yaml from the working directory
// or $HOME/.config/palz. A missing default config file is not an error.
func (l *Loader) Load(configPath string) (*Config, error) {
	if configPath != "" {
		l.v.SetConfigFile(configPath)
	} else {
		l.v.SetConfigName(AppName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if dir, err := userConfigDir(); err == nil {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("threads must be at least 1, got %d", cfg.Threads)
	}
	return &cfg, nil
}

// Load is a shortcut for NewLoader().Load(configPath).
func Load(configPath string) (*Config, error) {
	return NewLoader().Load(configPath)
}

func userConfigDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}
