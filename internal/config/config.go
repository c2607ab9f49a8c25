package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Reasoning ReasoningConfig `yaml:"reasoning"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	Token string `yaml:"token"`
}

type ReasoningConfig struct {
	APIKey   string `yaml:"api_key"`
	Disabled bool   `yaml:"disabled"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "stdio",
		},
		DB: DBConfig{
			Path: "briefforge.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("BRIEFFORGE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("BRIEFFORGE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("BRIEFFORGE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BRIEFFORGE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("BRIEFFORGE_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("BRIEFFORGE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("BRIEFFORGE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if token := os.Getenv("BRIEFFORGE_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if key := os.Getenv("BRIEFFORGE_GENAI_API_KEY"); key != "" {
		cfg.Reasoning.APIKey = key
	}
	if disabled := os.Getenv("BRIEFFORGE_REASONING_DISABLED"); disabled != "" {
		v, err := strconv.ParseBool(disabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BRIEFFORGE_REASONING_DISABLED: %w", err)
		}
		cfg.Reasoning.Disabled = v
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
