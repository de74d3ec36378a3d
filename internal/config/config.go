// Package config loads CLI configuration from a YAML file with environment
// variable fallbacks.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/zostools/zosmf-go/zosmf"
	"gopkg.in/yaml.v3"
)

// Environment variables read when the file leaves a field empty.
const (
	EnvHost     = "ZOSMF_HOST"
	EnvPort     = "ZOSMF_PORT"
	EnvUser     = "ZOSMF_USER"
	EnvPassword = "ZOSMF_PASSWORD"
	EnvBasePath = "ZOSMF_BASE_PATH"
	EnvLogLevel = "ZOSMF_LOG_LEVEL"
)

// Config holds CLI settings.
type Config struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	BasePath string `yaml:"basePath"`
	LogLevel string `yaml:"logLevel"`
}

// Load reads the YAML file at path when path is not empty, then fills any
// empty field from the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

// NewFromEnv Constructor reading the environment only.
func NewFromEnv() *Config {
	cfg := Config{}
	cfg.applyEnv()
	return &cfg
}

func (c *Config) applyEnv() {
	setFromEnv(&c.Host, EnvHost)
	setFromEnv(&c.Port, EnvPort)
	setFromEnv(&c.User, EnvUser)
	setFromEnv(&c.Password, EnvPassword)
	setFromEnv(&c.BasePath, EnvBasePath)
	setFromEnv(&c.LogLevel, EnvLogLevel)
}

func setFromEnv(field *string, name string) {
	if *field != "" {
		return
	}
	*field = strings.TrimSpace(os.Getenv(name))
}

// Connection builds a connection from the loaded settings.
func (c *Config) Connection() zosmf.Connection {
	return zosmf.Connection{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		BasePath: c.BasePath,
	}
}
