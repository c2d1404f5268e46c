package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the batch mode.
type Config struct {
	Repositories []RepositoryConfig `yaml:"repositories"`
}

// RepositoryConfig describes one watched GitHub repository.
type RepositoryConfig struct {
	Author      string `yaml:"author"`       // Repository owner (user or org)
	Name        string `yaml:"name"`         // Repository name
	Version     string `yaml:"version"`      // Currently used version (may carry a "v")
	VersionFrom string `yaml:"version_from"` // Local clone whose latest tag is the current version
	Token       string `yaml:"token"`        // Inline, ${ENV_VAR}, or file path; empty = public mode
	Message     string `yaml:"message"`      // Custom notification template (optional)
	AutoNotify  *bool  `yaml:"auto_notify"`  // Defaults to true
}

// Notify reports whether the entry wants auto-notification (default true).
func (r RepositoryConfig) Notify() bool {
	return r.AutoNotify == nil || *r.AutoNotify
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables and resolving token file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	// Resolve tokens (env vars and file paths)
	for i := range cfg.Repositories {
		cfg.Repositories[i].Token = resolveToken(cfg.Repositories[i].Token)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".updatechecker.yaml",
		".updatechecker.yml",
		"updatechecker.yaml",
		"updatechecker.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if len(cfg.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}

	for i, r := range cfg.Repositories {
		if r.Author == "" {
			return fmt.Errorf("repositories[%d].author is required", i)
		}
		if r.Name == "" {
			return fmt.Errorf("repositories[%d].name is required", i)
		}
		if r.Version == "" && r.VersionFrom == "" {
			return fmt.Errorf(
				"repositories[%d] needs either version or version_from",
				i,
			)
		}
		if r.Version != "" && r.VersionFrom != "" {
			return fmt.Errorf(
				"repositories[%d] must not set both version and version_from",
				i,
			)
		}
	}

	return nil
}
