package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"termludo/internal/game"
)

// configName is the config file name without extension.
const configName = ".termludo"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. TERMLUDO_MAX_ATTEMPTS.
const envPrefix = "TERMLUDO"

// Config is the resolved runtime configuration.
type Config struct {
	MaxAttempts int    `mapstructure:"max_attempts"`
	AnswersFile string `mapstructure:"answers_file"`
	AllowedFile string `mapstructure:"allowed_file"`
	Seed        int64  `mapstructure:"seed"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	NoColor     bool   `mapstructure:"no_color"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"attempts":  "max_attempts",
	"answers":   "answers_file",
	"allowed":   "allowed_file",
	"seed":      "seed",
	"log-file":  "log_file",
	"log-level": "log_level",
	"no-color":  "no_color",
}

// LoadConfig resolves configuration from defaults, an optional config file,
// TERMLUDO_* environment variables and flags, in increasing precedence.
// If configPath is empty the file is searched in CWD and $HOME; a missing
// file is not an error.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("max_attempts", game.DefaultMaxAttempts)
	v.SetDefault("answers_file", "")
	v.SetDefault("allowed_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)
}

// Validate rejects settings no game can be played with.
func (c *Config) Validate() error {
	if c.MaxAttempts < 1 || c.MaxAttempts > game.MaxAttemptsLimit {
		return fmt.Errorf("max_attempts must be between 1 and %d, got %d", game.MaxAttemptsLimit, c.MaxAttempts)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
