// Package generate handles the debt-base generation command
package generate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/siro-files/cmd/root"
	"fjacquet/siro-files/internal/config"
	"fjacquet/siro-files/internal/container"
	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRequest is returned when the request fails validation. The field
// errors are printed before it is returned.
var ErrInvalidRequest = errors.New("generation request is invalid")

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a debt-base file from a YAML request",
	Long: `Generate a FULL or BASIC debt-base file from a YAML generation request
(conventions, clients, due tiers, messages). Field errors are listed and
nothing is written when the request is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags.Input, root.SharedFlags.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Run reads the request at input and writes the debt base to output, or to
// out when output is empty. Field errors go to errOut.
func Run(c *container.Container, input, output string, out, errOut io.Writer) error {
	if input == "" {
		return fmt.Errorf("a request file is required (-i)")
	}

	ctx, err := LoadRequest(input, c.GetConfig().Generation)
	if err != nil {
		return err
	}

	res, err := c.GetGenerator().Generate(c.NewReceiptSession(), ctx)
	if err != nil {
		var verrs parsererror.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(errOut, "  - %s\n", fe.Error())
			}
			return fmt.Errorf("%w: %d field error(s)", ErrInvalidRequest, len(verrs))
		}
		return err
	}

	if err := fileutils.WriteOutput(output, res.Text+"\n", out); err != nil {
		return err
	}

	c.GetLogger().Info("Debt base written",
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldCount, Value: res.DetailCount},
		logging.Field{Key: "dropped", Value: res.Dropped})
	return nil
}

// LoadRequest reads a YAML generation request and fills what it leaves empty
// from the generation defaults.
func LoadRequest(path string, defaults config.GenerationConfig) (models.GenerationContext, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return models.GenerationContext{}, fmt.Errorf("failed to read request %s: %w", path, err)
	}

	var raw models.GenerationContext
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return models.GenerationContext{}, fmt.Errorf("failed to decode request %s: %w", path, err)
	}

	dialect := string(raw.Dialect)
	if dialect == "" {
		dialect = defaults.Dialect
	}
	b := models.NewGenerationContextBuilder().FromContext(raw).WithDialect(dialect)
	return b.WithDefaults(defaults.TicketMessage, defaults.ScreenMessage, defaults.ConceptID).Build()
}
