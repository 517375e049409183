package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from an optional config file and
// the environment.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// Either text or json
	LogFormat string `mapstructure:"log_format"`
}

var defaultConfig = Config{
	LogLevel:  "warn",
	LogFormat: "text",
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("log_format", "LOG_FORMAT")
}

func loadConfig(path string) (Config, error) {
	if len(path) > 0 {
		if _, err := os.Stat(path); err != nil {
			return Config{}, errors.Wrap(err, "failed to check if config exists")
		}
		viper.SetConfigFile(path)
	}

	err := viper.ReadInConfig()
	_, isConfigNotFound := err.(viper.ConfigFileNotFoundError)
	if err != nil && !isConfigNotFound && len(path) > 0 {
		return Config{}, errors.Wrap(err, "failed to load config")
	}

	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return config, nil
}

func configureLogger(config Config) {
	switch strings.ToLower(config.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	logrus.SetOutput(os.Stderr)
}
