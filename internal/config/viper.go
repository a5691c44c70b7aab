package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/models"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// InputConfig holds settings for uploaded files.
type InputConfig struct {
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// GenerationConfig holds debt-base generation defaults.
type GenerationConfig struct {
	Dialect       string `mapstructure:"dialect" yaml:"dialect"`
	TicketMessage string `mapstructure:"ticket_message" yaml:"ticket_message"`
	ScreenMessage string `mapstructure:"screen_message" yaml:"screen_message"`
	ConceptID     string `mapstructure:"concept_id" yaml:"concept_id"`
	StrictWidths  bool   `mapstructure:"strict_widths" yaml:"strict_widths"`
}

// RenditionConfig holds settlement batch settings.
type RenditionConfig struct {
	Seed              int64 `mapstructure:"seed" yaml:"seed"` // 0 seeds from the clock
	NodeID            int64 `mapstructure:"node_id" yaml:"node_id"`
	PaymentIDAttempts int   `mapstructure:"payment_id_attempts" yaml:"payment_id_attempts"`
	OnlinePayments    bool  `mapstructure:"online_payments" yaml:"online_payments"`
	StrictWidths      bool  `mapstructure:"strict_widths" yaml:"strict_widths"`
}

// ExportConfig holds parsed-file export settings.
type ExportConfig struct {
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Input      InputConfig      `mapstructure:"input" yaml:"input"`
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation"`
	Rendition  RenditionConfig  `mapstructure:"rendition" yaml:"rendition"`
	Export     ExportConfig     `mapstructure:"export" yaml:"export"`
}

// Node ids accepted by the snowflake payment-id source.
const (
	minNodeID = 0
	maxNodeID = 1023
)

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFile("")
}

// InitializeConfigFile loads configuration like InitializeConfig, reading
// path instead of searching the default locations when path is not empty.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.siro-files")
		v.AddConfigPath(".siro-files")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("SIRO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the default configuration without reading files or the
// environment. It panics if the built-in defaults do not decode, which only a
// broken setDefaults can cause.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: invalid built-in defaults: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Input defaults
	v.SetDefault("input.encoding", fileutils.EncodingUTF8)

	// Generation defaults
	v.SetDefault("generation.dialect", string(models.DialectFull))
	v.SetDefault("generation.ticket_message", "PAGO DEUDA")
	v.SetDefault("generation.screen_message", "PAGO DEUDA")
	v.SetDefault("generation.concept_id", "0")
	v.SetDefault("generation.strict_widths", false)

	// Rendition defaults
	v.SetDefault("rendition.seed", 0)
	v.SetDefault("rendition.node_id", 1)
	v.SetDefault("rendition.payment_id_attempts", 1000)
	v.SetDefault("rendition.online_payments", false)
	v.SetDefault("rendition.strict_widths", false)

	// Export defaults
	v.SetDefault("export.csv_delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := fileutils.NormalizeEncoding(config.Input.Encoding); err != nil {
		return fmt.Errorf("invalid input.encoding: %w", err)
	}

	if _, err := models.ParseDialect(config.Generation.Dialect); err != nil {
		return fmt.Errorf("invalid generation.dialect: %w", err)
	}

	if c := config.Generation.ConceptID; len(c) != 1 || c[0] < '0' || c[0] > '9' {
		return fmt.Errorf("generation.concept_id must be a digit from 0 to 9, got: %s", c)
	}

	if config.Rendition.NodeID < minNodeID || config.Rendition.NodeID > maxNodeID {
		return fmt.Errorf("rendition.node_id must be between %d and %d, got: %d", minNodeID, maxNodeID, config.Rendition.NodeID)
	}

	if config.Rendition.PaymentIDAttempts < 1 {
		return fmt.Errorf("rendition.payment_id_attempts must be positive, got: %d", config.Rendition.PaymentIDAttempts)
	}

	if len(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("export.csv_delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
