// Package parse handles the debt-base parse command
package parse

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/siro-files/cmd/root"
	"fjacquet/siro-files/internal/container"
	"fjacquet/siro-files/internal/export"
	"fjacquet/siro-files/internal/models"

	"github.com/spf13/cobra"
)

// ExportFormat is the --export flag value
var ExportFormat string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a FULL debt-base file",
	Long: `Parse a FULL (280) debt-base file, print a summary and every structural
error, and optionally export the parsed records to CSV, YAML or XLSX.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags.Input, root.SharedFlags.Output, ExportFormat, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVar(&ExportFormat, "export", "", "Export format: csv, yaml or xlsx (default from the output extension)")
}

// Run parses input and writes the summary to out.
func Run(c *container.Container, input, output, format string, out io.Writer) error {
	if input == "" {
		return fmt.Errorf("an input file is required (-i)")
	}

	file, err := c.GetParser().ParseFile(input)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}

	exportTo, err := resolveFormat(format, output)
	if err != nil {
		return err
	}

	if exportTo == "" || output != "" {
		PrintSummary(out, file)
	}
	if exportTo == "" {
		return nil
	}
	return c.GetExporter().ExportFile(output, file, exportTo, out)
}

// resolveFormat picks the export format from the flag, then from the output
// extension. No format and no output means summary only.
func resolveFormat(format, output string) (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	if output == "" {
		return "", nil
	}
	f, err := export.ParseFormat(strings.TrimPrefix(filepath.Ext(output), "."))
	if err != nil {
		return "", fmt.Errorf("cannot infer export format from %s, use --export", output)
	}
	return f, nil
}

// PrintSummary writes a human-readable report of file.
func PrintSummary(out io.Writer, file *models.ParsedFile) {
	fmt.Fprintf(out, "File:     %s\n", file.FileName)
	fmt.Fprintf(out, "Lines:    %d\n", file.TotalRecords)
	if file.Header != nil {
		fmt.Fprintf(out, "Header:   line %d, file date %s\n", file.Header.Line, file.Header.FileDate)
	} else {
		fmt.Fprintln(out, "Header:   missing")
	}
	fmt.Fprintf(out, "Details:  %d (total %s)\n", len(file.Details), file.DetailTotal().StringFixed(2))
	if file.Footer != nil {
		fmt.Fprintf(out, "Footer:   line %d, %s records, total %s\n",
			file.Footer.Line, file.Footer.RecordCount, file.Footer.TotalAmountValue().StringFixed(2))
	} else {
		fmt.Fprintln(out, "Footer:   missing")
	}

	if !file.HasErrors() {
		fmt.Fprintln(out, "Errors:   none")
		return
	}
	fmt.Fprintf(out, "Errors:   %d\n", len(file.Errors))
	for _, msg := range file.ErrorMessages() {
		fmt.Fprintf(out, "  - %s\n", msg)
	}
}
