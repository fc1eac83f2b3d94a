package cliutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	configutils "github.com/graphite-platforms/gcp-client/pkg/config"
	"github.com/graphite-platforms/gcp-client/pkg/gceclient"
	logutils "github.com/graphite-platforms/gcp-client/pkg/logging"
)

// Config carries the CLI-wide settings. Every field can be set from the
// environment and overridden per command with flags.
type Config struct {
	Project  string        `env:"GCECTL_PROJECT"`
	LogLevel string        `env:"GCECTL_LOG_LEVEL" env-default:"silent"`
	Timeout  time.Duration `env:"GCECTL_TIMEOUT" env-default:"5m"`
}

func LoadConfig() (*Config, error) {
	return configutils.ReadFromEnv[Config]()
}

// NewClient builds the API client with the configured log level.
func NewClient(ctx context.Context, cfg *Config) (*gceclient.Client, error) {
	log, err := logutils.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return gceclient.New(ctx, log)
}

// ResolveProject prefers the flag value over the environment.
func ResolveProject(cfg *Config, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Project != "" {
		return cfg.Project, nil
	}
	return "", fmt.Errorf("--project or GCECTL_PROJECT is required")
}

// ParseKeyValues parses repeated key=value flag values.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	parsed := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair: %q", pair)
		}
		parsed[key] = value
	}
	return parsed, nil
}
