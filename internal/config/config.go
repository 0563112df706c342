package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Detector DetectorConfig `mapstructure:"detector"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DetectorConfig holds the Spectral Residual hyperparameters
type DetectorConfig struct {
	Q           int     `mapstructure:"q"`            // log-amplitude smoothing window
	Z           int     `mapstructure:"z"`            // score smoothing window
	Threshold   float64 `mapstructure:"threshold"`    // anomaly decision threshold
	TrendWindow int     `mapstructure:"trend_window"` // trailing points for the extrapolation gradient (m)
	ExtraPoints int     `mapstructure:"extra_points"` // points extrapolated at each end (k); 0 disables
}

// InputConfig represents input configuration
type InputConfig struct {
	// Path of the input CSV file; "" or "-" reads from stdin.
	// .gz, .zst, .sz and .snappy files are decompressed transparently.
	Path string `mapstructure:"path"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Path       string `mapstructure:"path"`        // output CSV path; "" writes to stdout
	TimeFormat string `mapstructure:"time_format"` // datetime, millis
	Plot       string `mapstructure:"plot"`        // optional PNG chart path
	PlotTitle  string `mapstructure:"plot_title"`  // title of the value row in the chart
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Detector.Validate(); err != nil {
		return fmt.Errorf("detector config: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

// Validate validates the detector hyperparameters
func (c *DetectorConfig) Validate() error {
	if c.Q < 1 {
		return fmt.Errorf("q must be at least 1, got %d", c.Q)
	}
	if c.Z < 1 {
		return fmt.Errorf("z must be at least 1, got %d", c.Z)
	}
	if c.TrendWindow < 1 {
		return fmt.Errorf("trend_window must be at least 1, got %d", c.TrendWindow)
	}
	if c.ExtraPoints < 0 {
		return fmt.Errorf("extra_points must not be negative, got %d", c.ExtraPoints)
	}
	return nil
}

// Validate validates the output configuration
func (c *OutputConfig) Validate() error {
	switch c.TimeFormat {
	case "datetime", "millis":
		return nil
	default:
		return fmt.Errorf("time_format must be datetime or millis, got %q", c.TimeFormat)
	}
}

// Validate validates the logging configuration
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error, got %q", c.Level)
	}
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("format must be json or console, got %q", c.Format)
	}
	return nil
}
