package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "DIGITLIST"
	appName      = "digitlist"
)

// Config holds settings shared by every command. Values come from an optional
// YAML file and are then overridden by the environment.
type Config struct {
	Debug     bool   `envconfig:"DEBUG"      yaml:"debug"`
	LogFormat string `envconfig:"LOG_FORMAT" yaml:"logFormat"`
	Output    string `envconfig:"OUTPUT"     yaml:"output"`
}

func configFile() string {
	if path := os.Getenv(envVarPrefix + "_CONFIG_FILE"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", appName+".yaml")
}

// LoadConfig reads the config file (if present) and applies environment
// overrides.
func LoadConfig() (*Config, error) {
	c := Config{
		LogFormat: "text",
	}

	if path := configFile(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.UnmarshalStrict(data, &c); err != nil {
				return nil, fmt.Errorf("unmarshaling config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, c.Validate()
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
		return nil
	}

	return fmt.Errorf("logFormat (%s_LOG_FORMAT): want text or json, got %q", envVarPrefix, c.LogFormat)
}

// Apply configures the standard logger.
func (c *Config) Apply() {
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}
}
