package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")             // Current directory
		v.AddConfigPath("./configs")     // Project configs directory
		v.AddConfigPath("/etc/srdetect") // System-wide config
	}

	// Set defaults
	setDefaults(v)

	// Enable environment variable overrides
	v.SetEnvPrefix("SRDETECT")
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Detector defaults (reference hyperparameters)
	v.SetDefault("detector.q", 3)
	v.SetDefault("detector.z", 21)
	v.SetDefault("detector.threshold", 3.0)
	v.SetDefault("detector.trend_window", 5)
	v.SetDefault("detector.extra_points", 5)

	// Input defaults
	v.SetDefault("input.path", "-")

	// Output defaults
	v.SetDefault("output.path", "")
	v.SetDefault("output.time_format", "datetime")
	v.SetDefault("output.plot", "")
	v.SetDefault("output.plot_title", "value")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Detector: DetectorConfig{
			Q:           3,
			Z:           21,
			Threshold:   3.0,
			TrendWindow: 5,
			ExtraPoints: 5,
		},
		Input: InputConfig{
			Path: "-",
		},
		Output: OutputConfig{
			TimeFormat: "datetime",
			PlotTitle:  "value",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}
