package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/jobpulse.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataFile     string `yaml:"data_file" envconfig:"DATA_FILE" default:"data/jobs_master.csv"`
	RegistryFile string `yaml:"registry_file" envconfig:"REGISTRY_FILE" default:"data/skill_registry.yaml"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"output/analysis"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// AnalysisConfig carries the engine thresholds that are configurable from
// the environment. The values map onto intelligence.AnalysisConfig in the
// command layer; defaults match the engine defaults.
type AnalysisConfig struct {
	SignificanceLevel  float64 `yaml:"significance_level" envconfig:"SIGNIFICANCE_LEVEL" default:"0.05"`
	MinCorrelation     float64 `yaml:"min_correlation" envconfig:"MIN_CORRELATION" default:"0.3"`
	MinComboCount      int     `yaml:"min_combo_count" envconfig:"MIN_COMBO_COUNT" default:"5"`
	TopCombinations    int     `yaml:"top_combinations" envconfig:"TOP_COMBINATIONS" default:"20"`
	MaxConcurrency     int     `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY" default:"4"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Environment variables take precedence over the file
	if err := envconfig.Process("JOBPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Analysis.SignificanceLevel <= 0 || c.Analysis.SignificanceLevel > 1 {
		return fmt.Errorf("significance level must be in (0, 1], got %g", c.Analysis.SignificanceLevel)
	}
	if c.Analysis.MinCorrelation < 0 || c.Analysis.MinCorrelation > 1 {
		return fmt.Errorf("min correlation must be in [0, 1], got %g", c.Analysis.MinCorrelation)
	}
	if c.Analysis.MinComboCount < 1 {
		return fmt.Errorf("min combo count must be positive, got %d", c.Analysis.MinComboCount)
	}
	if c.Analysis.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be positive, got %d", c.Analysis.MaxConcurrency)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown logging format: %s", c.Logging.Format)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if path := os.Getenv("JOBPULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return filepath.Join(".", "jobpulse.yaml")
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config, env takes precedence
// for any field the environment explicitly set
func mergeConfigs(fileCfg, envCfg Config) Config {
	merged := fileCfg

	if os.Getenv("JOBPULSE_SERVER_PORT") != "" {
		merged.Server.Port = envCfg.Server.Port
	}
	if os.Getenv("JOBPULSE_SERVER_READ_TIMEOUT") != "" {
		merged.Server.ReadTimeout = envCfg.Server.ReadTimeout
	}
	if os.Getenv("JOBPULSE_SERVER_WRITE_TIMEOUT") != "" {
		merged.Server.WriteTimeout = envCfg.Server.WriteTimeout
	}
	if os.Getenv("JOBPULSE_SERVER_IDLE_TIMEOUT") != "" {
		merged.Server.IdleTimeout = envCfg.Server.IdleTimeout
	}
	if os.Getenv("JOBPULSE_SERVER_SHUTDOWN_TIMEOUT") != "" {
		merged.Server.ShutdownTimeout = envCfg.Server.ShutdownTimeout
	}
	if os.Getenv("JOBPULSE_SERVER_RATE_LIMIT_ENABLED") != "" {
		merged.Server.RateLimit.Enabled = envCfg.Server.RateLimit.Enabled
	}
	if os.Getenv("JOBPULSE_SERVER_RATE_LIMIT_RPS") != "" {
		merged.Server.RateLimit.RPS = envCfg.Server.RateLimit.RPS
	}
	if os.Getenv("JOBPULSE_SERVER_RATE_LIMIT_BURST") != "" {
		merged.Server.RateLimit.Burst = envCfg.Server.RateLimit.Burst
	}
	if os.Getenv("JOBPULSE_LOGGING_LEVEL") != "" {
		merged.Logging.Level = envCfg.Logging.Level
	}
	if os.Getenv("JOBPULSE_LOGGING_FORMAT") != "" {
		merged.Logging.Format = envCfg.Logging.Format
	}
	if os.Getenv("JOBPULSE_LOGGING_OUTPUT") != "" {
		merged.Logging.Output = envCfg.Logging.Output
	}
	if os.Getenv("JOBPULSE_LOGGING_FILE_PATH") != "" {
		merged.Logging.FilePath = envCfg.Logging.FilePath
	}
	if os.Getenv("JOBPULSE_PATHS_DATA_FILE") != "" {
		merged.Paths.DataFile = envCfg.Paths.DataFile
	}
	if os.Getenv("JOBPULSE_PATHS_REGISTRY_FILE") != "" {
		merged.Paths.RegistryFile = envCfg.Paths.RegistryFile
	}
	if os.Getenv("JOBPULSE_PATHS_OUTPUT_DIR") != "" {
		merged.Paths.OutputDir = envCfg.Paths.OutputDir
	}
	if os.Getenv("JOBPULSE_PATHS_LOGS_DIR") != "" {
		merged.Paths.LogsDir = envCfg.Paths.LogsDir
	}
	if os.Getenv("JOBPULSE_ANALYSIS_SIGNIFICANCE_LEVEL") != "" {
		merged.Analysis.SignificanceLevel = envCfg.Analysis.SignificanceLevel
	}
	if os.Getenv("JOBPULSE_ANALYSIS_MIN_CORRELATION") != "" {
		merged.Analysis.MinCorrelation = envCfg.Analysis.MinCorrelation
	}
	if os.Getenv("JOBPULSE_ANALYSIS_MIN_COMBO_COUNT") != "" {
		merged.Analysis.MinComboCount = envCfg.Analysis.MinComboCount
	}
	if os.Getenv("JOBPULSE_ANALYSIS_TOP_COMBINATIONS") != "" {
		merged.Analysis.TopCombinations = envCfg.Analysis.TopCombinations
	}
	if os.Getenv("JOBPULSE_ANALYSIS_MAX_CONCURRENCY") != "" {
		merged.Analysis.MaxConcurrency = envCfg.Analysis.MaxConcurrency
	}

	// Zero-valued file sections fall back to env (which carries defaults)
	if merged.Server.Port == 0 {
		merged.Server = envCfg.Server
	}
	if merged.Logging.Level == "" {
		merged.Logging = envCfg.Logging
	}
	if merged.Paths.DataFile == "" {
		merged.Paths = envCfg.Paths
	}
	if merged.Analysis.SignificanceLevel == 0 {
		merged.Analysis = envCfg.Analysis
	}

	return merged
}
