// Package container provides dependency injection for the siro-files
// application. It builds every component once from the configuration so
// commands receive their collaborators explicitly.
package container

import (
	"fmt"

	"fjacquet/siro-files/internal/config"
	"fjacquet/siro-files/internal/debtbase"
	"fjacquet/siro-files/internal/export"
	"fjacquet/siro-files/internal/generator"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/receipt"
	"fjacquet/siro-files/internal/rendition"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods. Per-run state (receipt sessions,
// payment ids) is never held here; callers get fresh instances from the
// New* methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	parser    *debtbase.Parser
	generator *generator.Generator
	builder   *rendition.Builder
	exporter  *export.Exporter
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))

	return newContainer(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return newContainer(cfg, logging.OrDefault(logger))
}

func newContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	var delim rune
	if cfg.Export.CSVDelimiter != "" {
		delim = []rune(cfg.Export.CSVDelimiter)[0]
	}

	c := &Container{
		logger: logger,
		config: cfg,
		parser: debtbase.NewParser(logger, debtbase.WithEncoding(cfg.Input.Encoding)),
		generator: generator.NewGenerator(logger,
			generator.WithStrictWidths(cfg.Generation.StrictWidths)),
		builder: rendition.NewBuilder(logger,
			rendition.WithSeed(cfg.Rendition.Seed),
			rendition.WithPaymentIDNode(cfg.Rendition.NodeID, cfg.Rendition.PaymentIDAttempts),
			rendition.WithStrictWidths(cfg.Rendition.StrictWidths)),
		exporter: export.NewExporter(logger, export.WithDelimiter(delim)),
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "encoding", Value: cfg.Input.Encoding},
		logging.Field{Key: "node_id", Value: cfg.Rendition.NodeID})
	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the debt-base parser.
func (c *Container) GetParser() *debtbase.Parser {
	return c.parser
}

// GetGenerator returns the debt-base generator.
func (c *Container) GetGenerator() *generator.Generator {
	return c.generator
}

// GetRenditionBuilder returns the settlement record builder.
func (c *Container) GetRenditionBuilder() *rendition.Builder {
	return c.builder
}

// GetExporter returns the parsed-file exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// NewReceiptSession returns an empty receipt allocation session.
func (c *Container) NewReceiptSession() *receipt.Session {
	return receipt.NewSession(c.logger)
}

// NewPaymentIDs returns a payment-id generator on the configured node.
func (c *Container) NewPaymentIDs() (*rendition.PaymentIDs, error) {
	return rendition.NewNodePaymentIDs(c.config.Rendition.NodeID, c.config.Rendition.PaymentIDAttempts)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	c.logger.Info("Container closed")
	return nil
}
