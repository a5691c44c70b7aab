package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test default values
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "utf-8", config.Input.Encoding)
	assert.Equal(t, "FULL", config.Generation.Dialect)
	assert.Equal(t, "PAGO DEUDA", config.Generation.TicketMessage)
	assert.Equal(t, "PAGO DEUDA", config.Generation.ScreenMessage)
	assert.Equal(t, "0", config.Generation.ConceptID)
	assert.False(t, config.Generation.StrictWidths)
	assert.Equal(t, int64(0), config.Rendition.Seed)
	assert.Equal(t, int64(1), config.Rendition.NodeID)
	assert.Equal(t, 1000, config.Rendition.PaymentIDAttempts)
	assert.False(t, config.Rendition.OnlinePayments)
	assert.False(t, config.Rendition.StrictWidths)
	assert.Equal(t, ",", config.Export.CSVDelimiter)

	assert.Equal(t, config, Default())
}

func TestDefault_IsValid(t *testing.T) {
	var config *Config
	require.NotPanics(t, func() { config = Default() })
	assert.NoError(t, validateConfig(config))
	assert.NotSame(t, config, Default())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)
	chdirTemp(t)

	// Set test environment variables
	testEnvVars := map[string]string{
		"SIRO_LOG_LEVEL":                     "debug",
		"SIRO_LOG_FORMAT":                    "json",
		"SIRO_INPUT_ENCODING":                "latin1",
		"SIRO_GENERATION_DIALECT":            "BASIC",
		"SIRO_GENERATION_CONCEPT_ID":         "7",
		"SIRO_RENDITION_SEED":                "42",
		"SIRO_RENDITION_NODE_ID":             "12",
		"SIRO_RENDITION_ONLINE_PAYMENTS":     "true",
		"SIRO_RENDITION_PAYMENT_ID_ATTEMPTS": "5",
		"SIRO_EXPORT_CSV_DELIMITER":          ";",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test environment variable overrides
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "latin1", config.Input.Encoding)
	assert.Equal(t, "BASIC", config.Generation.Dialect)
	assert.Equal(t, "7", config.Generation.ConceptID)
	assert.Equal(t, int64(42), config.Rendition.Seed)
	assert.Equal(t, int64(12), config.Rendition.NodeID)
	assert.True(t, config.Rendition.OnlinePayments)
	assert.Equal(t, 5, config.Rendition.PaymentIDAttempts)
	assert.Equal(t, ";", config.Export.CSVDelimiter)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)
	tempDir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
  format: "json"
generation:
  dialect: "BASIC"
  ticket_message: "CUOTA"
  strict_widths: true
rendition:
  seed: 7
  online_payments: true
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test config file values
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "BASIC", config.Generation.Dialect)
	assert.Equal(t, "CUOTA", config.Generation.TicketMessage)
	assert.Equal(t, "PAGO DEUDA", config.Generation.ScreenMessage)
	assert.True(t, config.Generation.StrictWidths)
	assert.Equal(t, int64(7), config.Rendition.Seed)
	assert.True(t, config.Rendition.OnlinePayments)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)
	tempDir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
export:
  csv_delimiter: "|"
rendition:
  payment_id_attempts: 20
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600)
	require.NoError(t, err)

	// Set environment variables that should override config file
	t.Setenv("SIRO_LOG_LEVEL", "error")
	t.Setenv("SIRO_RENDITION_PAYMENT_ID_ATTEMPTS", "25")

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test precedence: env vars should override config file
	assert.Equal(t, "error", config.Log.Level)               // env var wins
	assert.Equal(t, "|", config.Export.CSVDelimiter)         // config file value
	assert.Equal(t, 25, config.Rendition.PaymentIDAttempts) // env var wins
}

func TestInitializeConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  encoding: windows-1252\n"), 0600))

	config, err := InitializeConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", config.Input.Encoding)

	_, err = InitializeConfigFile(filepath.Join(tempDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)
	t.Setenv("SIRO_GENERATION_DIALECT", "XML")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid encoding",
			modifyConfig: func(c *Config) { c.Input.Encoding = "ebcdic" },
			expectError:  "invalid input.encoding",
		},
		{
			name:         "invalid dialect",
			modifyConfig: func(c *Config) { c.Generation.Dialect = "HALF" },
			expectError:  "invalid generation.dialect",
		},
		{
			name:         "two-digit concept id",
			modifyConfig: func(c *Config) { c.Generation.ConceptID = "10" },
			expectError:  "generation.concept_id must be a digit from 0 to 9",
		},
		{
			name:         "letter concept id",
			modifyConfig: func(c *Config) { c.Generation.ConceptID = "A" },
			expectError:  "generation.concept_id must be a digit from 0 to 9",
		},
		{
			name:         "node id too large",
			modifyConfig: func(c *Config) { c.Rendition.NodeID = 1024 },
			expectError:  "rendition.node_id must be between 0 and 1023",
		},
		{
			name:         "negative node id",
			modifyConfig: func(c *Config) { c.Rendition.NodeID = -1 },
			expectError:  "rendition.node_id must be between 0 and 1023",
		},
		{
			name:         "zero attempts",
			modifyConfig: func(c *Config) { c.Rendition.PaymentIDAttempts = 0 },
			expectError:  "rendition.payment_id_attempts must be positive",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.Export.CSVDelimiter = "abc" },
			expectError:  "export.csv_delimiter must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		log       LogConfig
		level     logrus.Level
		jsonCheck bool
	}{
		{"text format info level", LogConfig{Level: "info", Format: "text"}, logrus.InfoLevel, false},
		{"json format debug level", LogConfig{Level: "debug", Format: "json"}, logrus.DebugLevel, true},
		{"unknown level falls back", LogConfig{Level: "loud", Format: "text"}, logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := ConfigureLoggingFromConfig(&Config{Log: tt.log})
			require.NotNil(t, logger)
			assert.Equal(t, tt.level, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.jsonCheck, isJSON)
		})
	}
}

// chdirTemp moves the test into an empty directory so no stray config file
// is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	t.Setenv("HOME", tempDir)
	return tempDir
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"SIRO_LOG_LEVEL",
		"SIRO_LOG_FORMAT",
		"SIRO_INPUT_ENCODING",
		"SIRO_GENERATION_DIALECT",
		"SIRO_GENERATION_TICKET_MESSAGE",
		"SIRO_GENERATION_SCREEN_MESSAGE",
		"SIRO_GENERATION_CONCEPT_ID",
		"SIRO_GENERATION_STRICT_WIDTHS",
		"SIRO_RENDITION_SEED",
		"SIRO_RENDITION_NODE_ID",
		"SIRO_RENDITION_PAYMENT_ID_ATTEMPTS",
		"SIRO_RENDITION_ONLINE_PAYMENTS",
		"SIRO_RENDITION_STRICT_WIDTHS",
		"SIRO_EXPORT_CSV_DELIMITER",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			// Log warning but continue - this is test cleanup
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
