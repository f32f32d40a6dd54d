// Package config provides configuration management for the snic service.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Ranker RankerConfig `mapstructure:"ranker"`
	Server ServerConfig `mapstructure:"server"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// RankerConfig holds the default GBER base and PageRank tuning that the CLI
// subcommands use when their flags do not override them. The HTTP API does
// not read it: its endpoints require base as a query parameter, and its rank
// endpoint uses damping 0.85 and tolerance 1e-6 unless the request sets them.
type RankerConfig struct {
	DefaultBase  uint64  `mapstructure:"default_base"`
	Damping      float64 `mapstructure:"damping"`
	Tolerance    float64 `mapstructure:"tolerance"`
	MaxBatchSize int     `mapstructure:"max_batch_size"`
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	OTelEnabled bool   `mapstructure:"otel_enabled"`
}

// ReportConfig holds optional Tencent COS report-upload configuration.
type ReportConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`
	Scheme    string `mapstructure:"scheme"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/snic")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("ranker.default_base", 10)
	v.SetDefault("ranker.damping", 0.85)
	v.SetDefault("ranker.tolerance", 1e-6)
	v.SetDefault("ranker.max_batch_size", 32)

	v.SetDefault("server.addr", ":8090")
	v.SetDefault("server.otel_enabled", false)

	v.SetDefault("report.enabled", false)
	v.SetDefault("report.scheme", "https")
	v.SetDefault("report.key_prefix", "snic-reports/")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Ranker.DefaultBase < 2 {
		return fmt.Errorf("ranker default base must be at least 2")
	}
	if c.Ranker.Damping <= 0 || c.Ranker.Damping >= 1 {
		return fmt.Errorf("ranker damping must be in (0, 1)")
	}
	if c.Ranker.Tolerance <= 0 {
		return fmt.Errorf("ranker tolerance must be positive")
	}
	if c.Ranker.MaxBatchSize < 1 {
		return fmt.Errorf("ranker max batch size must be at least 1")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Report.Enabled && c.Report.Bucket == "" {
		return fmt.Errorf("report bucket is required when report upload is enabled")
	}
	return nil
}
